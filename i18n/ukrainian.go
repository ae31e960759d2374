package i18n

func ukrainianSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:          "Сталася помилка! Перевірте аргументи командного рядка та файл налаштувань.",
		UnsupportedParamsError: "Непідтримувані розміри блоку та ключа. Допустимі пари (блок, ключ): (128, 128), (128, 256), (256, 256), (256, 512), (512, 512)",
		KeySizeError:           "Довжина ключа не відповідає розміру ключа",
		BlockSizeError:         "Довжина блоку не відповідає розміру блоку",
		BadHexError:            "Вхідні дані не є шістнадцятковим рядком",

		ParamsHeading:    "Калина (%d, %d)",
		EncipheringTitle: "--- ЗАШИФРУВАННЯ ---",
		DecipheringTitle: "--- РОЗШИФРУВАННЯ ---",
		KeyLabel:         "Ключ:",
		PlaintextLabel:   "Відкритий текст:",
		CiphertextLabel:  "Шифротекст:",
		RoundKeysTitle:   "--- РАУНДОВІ КЛЮЧІ ---",
		RoundKeyLabel:    "Раундовий ключ %d:",
		RoundsLabel:      "Раундів: %d",

		SuccessEnciphering: "Зашифрування успішне",
		FailedEnciphering:  "Помилка зашифрування",
		SuccessDeciphering: "Розшифрування успішне",
		FailedDeciphering:  "Помилка розшифрування",
		VectorsSummary:     "Пройдено векторів: %d з %d",
	}
}
