package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorOccurred          string
	UnsupportedParamsError string
	KeySizeError           string
	BlockSizeError         string
	BadHexError            string
	VectorFileError        string

	ParamsHeading    string
	EncipheringTitle string
	DecipheringTitle string
	KeyLabel         string
	PlaintextLabel   string
	CiphertextLabel  string
	RoundKeysTitle   string
	RoundKeyLabel    string
	RoundsLabel      string

	SuccessEnciphering string
	FailedEnciphering  string
	SuccessDeciphering string
	FailedDeciphering  string
	VectorsSummary     string
}

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:          "An error occurred! Please check the command line arguments and the config file.",
		UnsupportedParamsError: "Unsupported block and key size. Supported (block, key) pairs: (128, 128), (128, 256), (256, 256), (256, 512), (512, 512)",
		KeySizeError:           "The key length does not match the key size",
		BlockSizeError:         "The block length does not match the block size",
		BadHexError:            "The input is not a valid hex string",
		VectorFileError:        "Could not read the vectors file",

		ParamsHeading:    "Kalyna (%d, %d)",
		EncipheringTitle: "--- ENCIPHERING ---",
		DecipheringTitle: "--- DECIPHERING ---",
		KeyLabel:         "Key:",
		PlaintextLabel:   "Plaintext:",
		CiphertextLabel:  "Ciphertext:",
		RoundKeysTitle:   "--- ROUND KEYS ---",
		RoundKeyLabel:    "Round key %d:",
		RoundsLabel:      "Rounds: %d",

		SuccessEnciphering: "Success enciphering",
		FailedEnciphering:  "Failed enciphering",
		SuccessDeciphering: "Success deciphering",
		FailedDeciphering:  "Failed deciphering",
		VectorsSummary:     "%d of %d vectors passed",
	}
}
