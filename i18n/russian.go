package i18n

func russianSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:          "Произошла ошибка! Проверьте аргументы командной строки и файл настроек.",
		UnsupportedParamsError: "Неподдерживаемые размеры блока и ключа. Допустимые пары (блок, ключ): (128, 128), (128, 256), (256, 256), (256, 512), (512, 512)",
		KeySizeError:           "Длина ключа не соответствует размеру ключа",
		BlockSizeError:         "Длина блока не соответствует размеру блока",
		BadHexError:            "Входные данные не являются шестнадцатеричной строкой",
		VectorFileError:        "Не удалось прочитать файл с векторами",

		ParamsHeading:    "Калина (%d, %d)",
		EncipheringTitle: "--- ЗАШИФРОВАНИЕ ---",
		DecipheringTitle: "--- РАСШИФРОВАНИЕ ---",
		KeyLabel:         "Ключ:",
		PlaintextLabel:   "Открытый текст:",
		CiphertextLabel:  "Шифртекст:",
		RoundKeysTitle:   "--- РАУНДОВЫЕ КЛЮЧИ ---",
		RoundKeyLabel:    "Раундовый ключ %d:",
		RoundsLabel:      "Раундов: %d",

		SuccessEnciphering: "Зашифрование успешно",
		FailedEnciphering:  "Ошибка зашифрования",
		SuccessDeciphering: "Расшифрование успешно",
		FailedDeciphering:  "Ошибка расшифрования",
		VectorsSummary:     "Пройдено векторов: %d из %d",
	}
}
