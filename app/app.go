package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	throttle "github.com/boz/go-throttle"
	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/nPaBwaYT/rijndael/config"
	"github.com/nPaBwaYT/rijndael/i18n"
	"github.com/nPaBwaYT/rijndael/log"
	"github.com/nPaBwaYT/rijndael/rijndael"
	"github.com/nPaBwaYT/rijndael/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// App struct
type App struct {
	Config *config.AppConfig
	Log    *logrus.Entry
	Tr     *i18n.TranslationSet
	Out    io.Writer

	// таблицы ключей общие для всех заданий одного запуска
	cache *rijndael.ScheduleCache
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		Config: config,
		Out:    os.Stdout,
		cache:  rijndael.NewScheduleCache(),
	}
	app.Log = log.NewLogger(config)

	var err error
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.CLI.Language)
	if err != nil {
		return app, err
	}

	return app, nil
}

// Job описывает одну операцию над файлом
type Job struct {
	Decrypt bool
	Input   string
	Output  string
	HexKey  string
	TextKey string
	Workers int
	Variant string
	Trace   bool
}

// usageError ошибка в аргументах, сообщение уже переведено
type usageError string

func (e usageError) Error() string {
	return string(e)
}

// Run шифрует или дешифрует файл и печатает сводку
func (app *App) Run(ctx context.Context, job Job) error {
	if _, err := os.Stat(job.Input); os.IsNotExist(err) {
		return usageError(fmt.Sprintf(app.Tr.InputNotFound, job.Input))
	}

	key, err := app.resolveKey(job)
	if err != nil {
		return err
	}

	cipherContext, variant, err := app.newCipherContext(job, key)
	if err != nil {
		return err
	}

	stopProgress := app.startProgress(cipherContext, job.Input)
	startTime := time.Now()

	if job.Decrypt {
		err = cipherContext.DecryptFile(ctx, job.Input, job.Output)
	} else {
		err = cipherContext.EncryptFile(ctx, job.Input, job.Output)
	}
	stopProgress()
	if err != nil {
		return err
	}

	duration := time.Since(startTime)
	app.Log.WithFields(logrus.Fields{
		"input":    job.Input,
		"output":   job.Output,
		"decrypt":  job.Decrypt,
		"variant":  variant,
		"duration": duration,
	}).Info("job finished")

	message := app.Tr.FileEncrypted
	if job.Decrypt {
		message = app.Tr.FileDecrypted
	}
	fmt.Fprintln(app.Out, utils.ColoredString(fmt.Sprintf(message, job.Input, job.Output), color.FgGreen))

	var fileSize int64
	if info, err := os.Stat(job.Input); err == nil {
		fileSize = info.Size()
	}

	fmt.Fprintf(app.Out, "\n%s\n", app.Tr.Information)
	fmt.Fprint(app.Out, utils.FormatMapItem(2, app.Tr.VariantLabel, variant))
	fmt.Fprint(app.Out, utils.FormatMapItem(2, app.Tr.WorkersLabel, cipherContext.Workers()))
	fmt.Fprint(app.Out, utils.FormatMapItem(2, app.Tr.FileSizeLabel, utils.FormatBinaryBytes(fileSize)))
	fmt.Fprint(app.Out, utils.FormatMapItem(2, app.Tr.DurationLabel, duration))
	fmt.Fprint(app.Out, utils.FormatMapItem(2, app.Tr.KeyLabel, key))

	return nil
}

func (app *App) resolveKey(job Job) (rijndael.Key, error) {
	switch {
	case job.HexKey != "" && job.TextKey != "":
		return rijndael.Key{}, usageError(app.Tr.ConflictingKeys)
	case job.HexKey != "":
		return rijndael.ParseHexKey(job.HexKey)
	case job.TextKey != "":
		if app.Config.UserConfig.Cipher.LenientKeys {
			return rijndael.NormalizeKey([]byte(job.TextKey)), nil
		}
		return rijndael.NewKey([]byte(job.TextKey))
	default:
		return rijndael.Key{}, usageError(app.Tr.MissingKey)
	}
}

func (app *App) newCipherContext(job Job, key rijndael.Key) (*rijndael.CipherContext, rijndael.Variant, error) {
	variant, err := rijndael.ParseVariant(job.Variant)
	if err != nil {
		return nil, "", err
	}

	opts := []rijndael.Option{rijndael.WithScheduleCache(app.cache)}
	if job.Trace {
		opts = append(opts, rijndael.WithTracer(app.traceRound))
	}

	cipher, err := rijndael.NewRijndaelCipher(variant, opts...)
	if err != nil {
		return nil, "", err
	}

	cipherContext, err := rijndael.NewCipherContext(cipher, key, job.Workers)
	if err != nil {
		return nil, "", err
	}

	return cipherContext, variant, nil
}

// traceRound пишет состояние после каждого шага раунда в журнал
func (app *App) traceRound(ev rijndael.TraceEvent) {
	app.Log.WithFields(logrus.Fields{
		"direction": ev.Direction.String(),
		"round":     ev.Round,
		"step":      ev.Step,
		"state":     hex.EncodeToString(ev.State[:]),
	}).Debug("round step")
}

// startProgress печатает прогресс не чаще cli.progressInterval, возвращает функцию остановки
func (app *App) startProgress(cipherContext *rijndael.CipherContext, name string) func() {
	interval := app.Config.UserConfig.CLI.ProgressInterval
	if interval <= 0 {
		return func() {}
	}

	var processed atomic.Int64
	driver := throttle.ThrottleFunc(interval, false, func() {
		fmt.Fprintln(app.Out, utils.ColoredString(fmt.Sprintf(app.Tr.Progress, name, utils.FormatBinaryBytes(processed.Load())), color.FgCyan))
	})

	cipherContext.SetProgress(func(n int64) {
		processed.Store(n)
		driver.Trigger()
	})

	return func() {
		driver.Stop()
		cipherContext.SetProgress(nil)
	}
}

// Keygen возвращает случайный ключ в hex
func (app *App) Keygen() (string, error) {
	raw := make([]byte, rijndael.KeySize)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, 0)
	}

	key, err := rijndael.NewKey(raw)
	if err != nil {
		return "", err
	}

	app.Log.Info("key generated")

	return key.String(), nil
}

type errorMapping struct {
	code     rijndael.ErrorCode
	newError string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	var usage usageError
	if xerrors.As(err, &usage) {
		return string(usage), true
	}

	mappings := []errorMapping{
		{code: rijndael.InvalidPaddingLength, newError: app.Tr.WrongKeyOrCorruptedFile},
		{code: rijndael.InvalidPaddingBytes, newError: app.Tr.WrongKeyOrCorruptedFile},
		{code: rijndael.InvalidInputLength, newError: app.Tr.InvalidInputLength},
		{code: rijndael.InvalidKeyLength, newError: app.Tr.InvalidKeyLength},
		{code: rijndael.InvalidVariant, newError: app.Tr.InvalidVariant},
	}

	for _, mapping := range mappings {
		if rijndael.HasErrorCode(err, mapping.code) {
			return mapping.newError, true
		}
	}

	if xerrors.Is(err, context.Canceled) {
		return err.Error(), true
	}

	return "", false
}
