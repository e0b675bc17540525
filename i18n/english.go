package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	AppDescription         string
	EncryptDescription     string
	DecryptDescription     string
	KeygenDescription      string
	ConfigDescription      string
	InputArgDescription    string
	OutputArgDescription   string
	HexKeyFlagDescription  string
	TextKeyFlagDescription string
	WorkersFlagDescription string
	VariantFlagDescription string
	TraceFlagDescription   string
	DebugFlagDescription   string

	FileEncrypted   string
	FileDecrypted   string
	Progress        string
	Information     string
	VariantLabel    string
	WorkersLabel    string
	FileSizeLabel   string
	DurationLabel   string
	KeyLabel        string
	GeneratedKey    string
	SubcommandHint  string
	ErrorOccurred   string
	ErrorPrefix     string
	InputNotFound   string
	MissingKey      string
	ConflictingKeys string

	WrongKeyOrCorruptedFile string
	InvalidInputLength      string
	InvalidKeyLength        string
	InvalidVariant          string
}

func englishSet() TranslationSet {
	return TranslationSet{
		AppDescription:         "AES-128 (Rijndael) file encryption with PKCS#7 padding",
		EncryptDescription:     "Encrypt a file",
		DecryptDescription:     "Decrypt a file",
		KeygenDescription:      "Print a random 16 byte key in hex",
		ConfigDescription:      "Print the default config",
		InputArgDescription:    "Input file",
		OutputArgDescription:   "Output file",
		HexKeyFlagDescription:  "Key as 32 hex digits",
		TextKeyFlagDescription: "Key as text, exactly 16 bytes unless cipher.lenientKeys is set",
		WorkersFlagDescription: "Number of workers, 0 means one per CPU",
		VariantFlagDescription: "Substitution variant: rijndael or additive",
		TraceFlagDescription:   "Log every round step to development.log",
		DebugFlagDescription:   "Write a development log to the config directory",

		FileEncrypted:   "File encrypted: %s -> %s",
		FileDecrypted:   "File decrypted: %s -> %s",
		Progress:        "%s: %s processed",
		Information:     "Information:",
		VariantLabel:    "Variant",
		WorkersLabel:    "Workers",
		FileSizeLabel:   "File size",
		DurationLabel:   "Duration",
		KeyLabel:        "Key",
		GeneratedKey:    "Generated key:",
		SubcommandHint:  "Specify a subcommand: encrypt, decrypt, keygen or config",
		ErrorOccurred:   "An error occurred! Please include the following stack trace in an issue",
		ErrorPrefix:     "Error",
		InputNotFound:   "input file '%s' does not exist",
		MissingKey:      "a key is required: pass -k or -s",
		ConflictingKeys: "pass either -k or -s, not both",

		WrongKeyOrCorruptedFile: "wrong key or corrupted file",
		InvalidInputLength:      "the encrypted file is truncated: its size is not a multiple of 16 bytes",
		InvalidKeyLength:        "the key must be exactly 16 bytes (32 hex digits)",
		InvalidVariant:          "unknown variant, use rijndael or additive",
	}
}
