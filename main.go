package main

import (
	"bytes"
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"runtime"

	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
	"github.com/nPaBwaYT/rijndael/app"
	"github.com/nPaBwaYT/rijndael/config"
	"github.com/nPaBwaYT/rijndael/i18n"
	"github.com/nPaBwaYT/rijndael/log"
)

/*
Шифрование файла
rijndael encrypt -s thisisaverysecre input.txt output.enc

Дешифрование файла с ключом в hex
rijndael decrypt -k 000102030405060708090a0b0c0d0e0f input.enc output.txt

Аддитивный вариант подстановки, 4 потока, трассировка раундов в development.log
rijndael -d encrypt --variant=additive -w 4 --trace -s thisisaverysecre input.txt output.enc

Случайный ключ
rijndael keygen
*/

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	debuggingFlag = false
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

	appConfig, err := config.NewAppConfig("rijndael", version, commit, date, buildSource, false)
	if err != nil {
		stdlog.Fatal(err.Error())
	}

	// описания флагов нужны до разбора аргументов, журнал открывает только NewApp
	tr, _ := i18n.NewTranslationSetFromConfig(log.NewDiscardLogger(), appConfig.UserConfig.CLI.Language)

	flaggy.SetName("rijndael")
	flaggy.SetDescription(tr.AppDescription)
	flaggy.Bool(&debuggingFlag, "d", "debug", tr.DebugFlagDescription)
	flaggy.SetVersion(info)

	encryptCmd, encryptJob := newJobSubcommand("encrypt", tr.EncryptDescription, tr, appConfig.UserConfig)
	decryptCmd, decryptJob := newJobSubcommand("decrypt", tr.DecryptDescription, tr, appConfig.UserConfig)
	decryptJob.Decrypt = true

	keygenCmd := flaggy.NewSubcommand("keygen")
	keygenCmd.Description = tr.KeygenDescription

	configCmd := flaggy.NewSubcommand("config")
	configCmd.Description = tr.ConfigDescription

	for _, sc := range []*flaggy.Subcommand{encryptCmd, decryptCmd, keygenCmd, configCmd} {
		flaggy.AttachSubcommand(sc, 1)
	}

	flaggy.Parse()

	if configCmd.Used {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			stdlog.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	appConfig.Debug = appConfig.Debug || debuggingFlag

	app, err := app.NewApp(appConfig)
	if err != nil {
		app.Log.Warn(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case keygenCmd.Used:
		var key string
		key, err = app.Keygen()
		if err == nil {
			fmt.Println(app.Tr.GeneratedKey, color.GreenString(key))
		}
	case encryptCmd.Used:
		err = app.Run(ctx, *encryptJob)
	case decryptCmd.Used:
		err = app.Run(ctx, *decryptJob)
	default:
		flaggy.ShowHelpAndExit(app.Tr.SubcommandHint)
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			app.Log.Warn(err.Error())
			stdlog.Println(color.RedString("%s: %s", app.Tr.ErrorPrefix, errMessage))
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		app.Log.Error(stackTrace)

		stdlog.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}

// newJobSubcommand объявляет общие для encrypt и decrypt аргументы; значения по умолчанию берутся из config.yml
func newJobSubcommand(name, description string, tr *i18n.TranslationSet, userConfig *config.UserConfig) (*flaggy.Subcommand, *app.Job) {
	job := &app.Job{
		Workers: userConfig.Cipher.Workers,
		Variant: userConfig.Cipher.Variant,
		Trace:   userConfig.Cipher.Trace,
	}

	sc := flaggy.NewSubcommand(name)
	sc.Description = description
	sc.String(&job.HexKey, "k", "key", tr.HexKeyFlagDescription)
	sc.String(&job.TextKey, "s", "secret", tr.TextKeyFlagDescription)
	sc.Int(&job.Workers, "w", "workers", tr.WorkersFlagDescription)
	sc.String(&job.Variant, "", "variant", tr.VariantFlagDescription)
	sc.Bool(&job.Trace, "t", "trace", tr.TraceFlagDescription)
	sc.AddPositionalValue(&job.Input, "input", 1, true, tr.InputArgDescription)
	sc.AddPositionalValue(&job.Output, "output", 2, true, tr.OutputArgDescription)

	return sc, job
}
