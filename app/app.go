package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-errors/errors"
	"github.com/nPaBwaYT/kalyna/config"
	"github.com/nPaBwaYT/kalyna/cripta"
	"github.com/nPaBwaYT/kalyna/i18n"
	"github.com/nPaBwaYT/kalyna/log"
	"github.com/nPaBwaYT/kalyna/presentation"
	"github.com/nPaBwaYT/kalyna/vectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// App struct
type App struct {
	Config *config.AppConfig
	Log    *logrus.Entry
	Tr     *i18n.TranslationSet
	Out    io.Writer
}

// VectorsFailedError is returned by RunVectors when some vector did not match
type VectorsFailedError struct {
	Passed int
	Total  int
}

func (e *VectorsFailedError) Error() string {
	return fmt.Sprintf("%d of %d vectors passed", e.Passed, e.Total)
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		Config: config,
		Out:    os.Stdout,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if err != nil {
		return app, err
	}
	return app, nil
}

// RunVectors checks the reference vectors and the optional extra vectors file
// and prints them the way the reference program does
func (app *App) RunVectors() error {
	all, err := vectors.Reference()
	if err != nil {
		return err
	}

	if extraFile := app.Config.UserConfig.Vectors.ExtraFile; extraFile != "" {
		extra, err := vectors.LoadFile(extraFile)
		if err != nil {
			return WrapError(err)
		}
		all = append(all, extra...)
	}

	runner := vectors.NewRunner(app.Config.UserConfig.Vectors.Workers, log.ForComponent(app.Log, log.VectorsComponent))
	results := runner.Run(all)

	for _, result := range results {
		if result.Err != nil {
			return WrapError(result.Err)
		}
		app.printBlock(result.Vector.Params, result.Vector.Direction, result.Vector.Key, result.Vector.Input, result.Output)
		app.printVerdict(result.Vector.Direction, result.Passed)
	}

	passed, total := vectors.Summary(results)
	fmt.Fprintln(app.Out, fmt.Sprintf(app.Tr.VectorsSummary, passed, total))

	if passed != total {
		return errors.Wrap(&VectorsFailedError{Passed: passed, Total: total}, 0)
	}
	return nil
}

// RunEncipher enciphers one block given as hex bytes. A keyBits of 0 takes
// the key size from the key.
func (app *App) RunEncipher(blockBits, keyBits int, keyHex, blockHex string) error {
	return app.runBlock(vectors.Encipher, blockBits, keyBits, keyHex, blockHex)
}

// RunDecipher deciphers one block given as hex bytes
func (app *App) RunDecipher(blockBits, keyBits int, keyHex, blockHex string) error {
	return app.runBlock(vectors.Decipher, blockBits, keyBits, keyHex, blockHex)
}

func (app *App) runBlock(direction vectors.Direction, blockBits, keyBits int, keyHex, blockHex string) error {
	input, err := parseWords(blockHex, func(n int) error { return cripta.BlockSizeError(n) })
	if err != nil {
		return err
	}

	key, keyBits, err := app.keyOrRandom(keyHex, blockBits, keyBits)
	if err != nil {
		return err
	}

	params, err := cripta.ResolveParams(blockBits, keyBits)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	if key == nil {
		if key, err = cripta.GenerateRandomKey(params); err != nil {
			return err
		}
		app.Log.Debug("generated random key")
	}

	output, err := vectors.Apply(params, direction, key, input, app.Log)
	if err != nil {
		return err
	}

	app.printBlock(params, direction, key, input, output)
	return nil
}

// RunSchedule prints the round keys for a key
func (app *App) RunSchedule(blockBits, keyBits int, keyHex string) error {
	key, err := vectors.ParseHexBytes(keyHex)
	if err != nil {
		return err
	}
	if len(key) == 0 || len(key)%8 != 0 {
		return errors.Wrap(cripta.KeySizeError(len(key)), 0)
	}
	if keyBits == 0 {
		keyBits = len(key) * 8
	}

	kc, err := cripta.NewKalynaCipher(blockBits, keyBits)
	if err != nil {
		return err
	}
	defer kc.Close()
	kc.Context().SetLogger(app.Log)

	if err := kc.SetKey(key); err != nil {
		return err
	}

	app.printHeading(kc.Context().Params())
	fmt.Fprintln(app.Out, fmt.Sprintf(app.Tr.RoundsLabel, kc.GetRounds()))
	fmt.Fprintf(app.Out, "\n%s\n", app.Tr.RoundKeysTitle)
	for i, roundKey := range kc.Context().RoundKeys() {
		fmt.Fprintf(app.Out, "%s %s\n", fmt.Sprintf(app.Tr.RoundKeyLabel, i), presentation.FormatState(roundKey))
	}
	return nil
}

// keyOrRandom parses keyHex. An empty keyHex returns a nil key, to be
// generated once the parameters are known, and keyBits defaulting to blockBits.
func (app *App) keyOrRandom(keyHex string, blockBits, keyBits int) ([]uint64, int, error) {
	if keyHex == "" {
		if keyBits == 0 {
			keyBits = blockBits
		}
		return nil, keyBits, nil
	}

	key, err := parseWords(keyHex, func(n int) error { return cripta.KeySizeError(n) })
	if err != nil {
		return nil, 0, err
	}
	if keyBits == 0 {
		keyBits = len(key) * 64
	}
	return key, keyBits, nil
}

func parseWords(hexBytes string, sizeError func(int) error) ([]uint64, error) {
	data, err := vectors.ParseHexBytes(hexBytes)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || len(data)%8 != 0 {
		return nil, errors.Wrap(sizeError(len(data)), 0)
	}
	return cripta.BytesToWords(data), nil
}

func (app *App) printHeading(params cripta.Params) {
	fmt.Fprint(app.Out, "\n=============\n")
	fmt.Fprintln(app.Out, fmt.Sprintf(app.Tr.ParamsHeading, params.BlockBits(), params.KeyBits()))
}

func (app *App) printBlock(params cripta.Params, direction vectors.Direction, key, input, output []uint64) {
	out := app.Config.UserConfig.Output

	inputLabel, outputLabel, title := app.Tr.PlaintextLabel, app.Tr.CiphertextLabel, app.Tr.EncipheringTitle
	if direction == vectors.Decipher {
		inputLabel, outputLabel, title = app.Tr.CiphertextLabel, app.Tr.PlaintextLabel, app.Tr.DecipheringTitle
	}

	app.printHeading(params)
	fmt.Fprintf(app.Out, "\n%s\n", title)
	fmt.Fprintf(app.Out, "%s\n%s\n", app.Tr.KeyLabel, presentation.FormatBytes(key, out))
	fmt.Fprintf(app.Out, "%s\n%s\n", inputLabel, presentation.FormatBytes(input, out))
	fmt.Fprintf(app.Out, "%s\n%s\n", outputLabel, presentation.FormatBytes(output, out))
}

func (app *App) printVerdict(direction vectors.Direction, passed bool) {
	okText, failText := app.Tr.SuccessEnciphering, app.Tr.FailedEnciphering
	if direction == vectors.Decipher {
		okText, failText = app.Tr.SuccessDeciphering, app.Tr.FailedDeciphering
	}

	verdict := presentation.Verdict(passed, okText, failText, app.Config.UserConfig.Output.Color)
	fmt.Fprintf(app.Out, "%s\n\n", verdict)
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	var paramsErr *cripta.ParamsError
	var keySizeErr cripta.KeySizeError
	var blockSizeErr cripta.BlockSizeError
	var hexErr *vectors.HexError
	var failedErr *VectorsFailedError

	switch {
	case xerrors.As(err, &paramsErr):
		return app.Tr.UnsupportedParamsError, true
	case xerrors.As(err, &keySizeErr):
		return app.Tr.KeySizeError, true
	case xerrors.As(err, &blockSizeErr):
		return app.Tr.BlockSizeError, true
	case xerrors.As(err, &hexErr):
		return app.Tr.BadHexError, true
	case xerrors.As(err, &failedErr):
		return fmt.Sprintf(app.Tr.VectorsSummary, failedErr.Passed, failedErr.Total), true
	case xerrors.Is(err, fs.ErrNotExist):
		return app.Tr.VectorFileError, true
	}

	return "", false
}

// WrapError wraps an error for the sake of showing a stack trace at the top level
// the go-errors package, for some reason, does not return nil when you try to wrap
// a non-error, so we're just doing it here
func WrapError(err error) error {
	if err == nil {
		return err
	}

	return errors.Wrap(err, 0)
}
