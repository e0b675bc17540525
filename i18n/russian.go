package i18n

func russianSet() TranslationSet {
	return TranslationSet{
		AppDescription:         "Шифрование файлов AES-128 (Rijndael) с набивкой PKCS#7",
		EncryptDescription:     "Зашифровать файл",
		DecryptDescription:     "Дешифровать файл",
		KeygenDescription:      "Сгенерировать случайный 16-байтовый ключ в hex",
		ConfigDescription:      "Показать конфигурацию по умолчанию",
		InputArgDescription:    "Входной файл",
		OutputArgDescription:   "Выходной файл",
		HexKeyFlagDescription:  "Ключ шифрования в hex (32 символа)",
		TextKeyFlagDescription: "Ключ шифрования строкой, ровно 16 байт, если не включен cipher.lenientKeys",
		WorkersFlagDescription: "Количество потоков, 0 означает по одному на ядро",
		VariantFlagDescription: "Вариант подстановки: rijndael или additive",
		TraceFlagDescription:   "Писать каждый шаг раунда в development.log",
		DebugFlagDescription:   "Вести журнал разработчика в каталоге конфигурации",

		FileEncrypted:   "Файл успешно зашифрован: %s -> %s",
		FileDecrypted:   "Файл успешно дешифрован: %s -> %s",
		Progress:        "%s: обработано %s",
		Information:     "Информация:",
		VariantLabel:    "Вариант",
		WorkersLabel:    "Потоков",
		FileSizeLabel:   "Размер файла",
		DurationLabel:   "Время выполнения",
		KeyLabel:        "Ключ",
		GeneratedKey:    "Сгенерированный ключ:",
		SubcommandHint:  "Укажите команду: encrypt, decrypt, keygen или config",
		ErrorOccurred:   "Произошла ошибка! Приложите следующий стек вызовов к сообщению об ошибке",
		ErrorPrefix:     "Ошибка",
		InputNotFound:   "входной файл '%s' не существует",
		MissingKey:      "необходимо указать ключ: -k или -s",
		ConflictingKeys: "укажите либо -k, либо -s",

		WrongKeyOrCorruptedFile: "неверный ключ или файл поврежден",
		InvalidInputLength:      "зашифрованный файл обрезан: размер не кратен 16 байтам",
		InvalidKeyLength:        "ключ должен быть ровно 16 байт (32 hex символа)",
		InvalidVariant:          "неизвестный вариант, используйте rijndael или additive",
	}
}
