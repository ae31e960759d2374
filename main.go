package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
	"github.com/nPaBwaYT/kalyna/app"
	"github.com/nPaBwaYT/kalyna/config"
)

/*
Проверка эталонных векторов ДСТУ 7624:2014
go run main.go vectors

Зашифрование одного блока (размер ключа берется из длины ключа)
go run main.go encipher -b 128 --key 000102030405060708090A0B0C0D0E0F --block 101112131415161718191A1B1C1D1E1F

Расшифрование одного блока
go run main.go decipher -b 256 -k 512 --key <hex> --block <hex>

Без --key ключ генерируется случайно
go run main.go encipher -b 512 --block <hex>

Раундовые ключи
go run main.go schedule -b 128 --key 000102030405060708090A0B0C0D0E0F

Поддерживаемые пары (блок, ключ): (128, 128), (128, 256), (256, 256), (256, 512), (512, 512)
*/

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false

	blockBits = 128
	keyBits   = 0
	keyHex    string
	blockHex  string
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("kalyna")
	flaggy.SetDescription("Kalyna (DSTU 7624:2014) block cipher")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/nPaBwaYT/kalyna"

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "Write a development.log to the config directory")
	flaggy.SetVersion(info)

	vectorsCmd := flaggy.NewSubcommand("vectors")
	vectorsCmd.Description = "Check the reference vectors of the standard"

	encipherCmd := newBlockSubcommand("encipher", "Encipher one block")
	decipherCmd := newBlockSubcommand("decipher", "Decipher one block")

	scheduleCmd := flaggy.NewSubcommand("schedule")
	scheduleCmd.Description = "Print the round keys"
	addSizeFlags(scheduleCmd)
	scheduleCmd.String(&keyHex, "", "key", "Key as hex bytes")

	flaggy.AttachSubcommand(vectorsCmd, 1)
	flaggy.AttachSubcommand(encipherCmd, 1)
	flaggy.AttachSubcommand(decipherCmd, 1)
	flaggy.AttachSubcommand(scheduleCmd, 1)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	appConfig, err := config.NewAppConfig("kalyna", version, commit, date, buildSource, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}

	app, err := app.NewApp(appConfig)
	if err == nil {
		switch {
		case encipherCmd.Used:
			err = app.RunEncipher(blockBits, keyBits, keyHex, blockHex)
		case decipherCmd.Used:
			err = app.RunDecipher(blockBits, keyBits, keyHex, blockHex)
		case scheduleCmd.Used:
			err = app.RunSchedule(blockBits, keyBits, keyHex)
		default:
			err = app.RunVectors()
		}
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			log.Println(errMessage)
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		app.Log.Error(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}

func newBlockSubcommand(name, description string) *flaggy.Subcommand {
	cmd := flaggy.NewSubcommand(name)
	cmd.Description = description
	addSizeFlags(cmd)
	cmd.String(&keyHex, "", "key", "Key as hex bytes; random if empty")
	cmd.String(&blockHex, "", "block", "Block as hex bytes")
	return cmd
}

func addSizeFlags(cmd *flaggy.Subcommand) {
	cmd.Int(&blockBits, "b", "block-bits", "Block size in bits: 128, 256 or 512")
	cmd.Int(&keyBits, "k", "key-bits", "Key size in bits; 0 takes it from --key")
}
