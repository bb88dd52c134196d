// Command unsign decrypts an RSA signature read from stdin with a public
// modulus and writes the padded message representative to stdout.
//
//	echo hello | openssl rsautl -sign -inkey private.key | \
//	    unsign $(openssl x509 -modulus -noout < public.cert | cut -d= -f2)
package main

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func appFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "bits",
			Aliases: []string{"b"},
			Usage:   "Largest key size the engine accepts, one of 512, 1024, 2048, 4096, 8192",
			Value:   4096,
			EnvVars: []string{"UNSIGN_BITS"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log intermediate values to stderr",
		},
		&cli.StringFlag{
			Name:    "modulus",
			Aliases: []string{"m"},
			Usage:   "Public modulus as hex, used when no argument is given",
			EnvVars: []string{"UNSIGN_MODULUS"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: raw, hex or cbor",
			Value:   "raw",
			EnvVars: []string{"UNSIGN_FORMAT"},
		},
	}
}

func newApp(stdin io.Reader, stdout io.Writer, log *logrus.Logger) *cli.App {
	return &cli.App{
		Name:      "unsign",
		Usage:     "Decrypt an RSA signature with a public modulus and exponent 65537",
		ArgsUsage: "MODULUS < signature > data",
		Flags:     appFlags(),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: log.Out,
		Before: func(cCtx *cli.Context) error {
			if cCtx.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Action: func(cCtx *cli.Context) error {
			return runDecrypt(cCtx, log)
		},
		Commands: arithCommands(log),
		// exit codes are handled by the caller of Run
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// exitCode maps an error returned by App.Run to a process exit status.
func exitCode(err error) int {
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	app := newApp(os.Stdin, os.Stdout, log)
	if err := app.Run(os.Args); err != nil {
		if msg := err.Error(); msg != "" {
			log.Error(msg)
		}
		os.Exit(exitCode(err))
	}
}
