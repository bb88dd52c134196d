package main

import (
	"fmt"
	"io"

	"github.com/filecoin-project/go-unsign/bignum"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// arithmetic subcommands for checking the engine by hand, operands are hex
var arithOps = []struct {
	name  string
	usage string
	args  []string
}{
	{"add", "Print a+b", []string{"a", "b"}},
	{"sub", "Print a-b, wrapping if b > a", []string{"a", "b"}},
	{"mulmod", "Print a*b mod m, a must be less than m", []string{"a", "b", "m"}},
	{"expmod", "Print a^b mod m, a must be less than m", []string{"a", "b", "m"}},
}

func arithCommands(log *logrus.Logger) []*cli.Command {
	cmds := make([]*cli.Command, 0, len(arithOps))
	for _, op := range arithOps {
		op := op
		argsUsage := ""
		for _, a := range op.args {
			argsUsage += " " + a
		}
		cmds = append(cmds, &cli.Command{
			Name:      op.name,
			Usage:     op.usage,
			ArgsUsage: argsUsage[1:],
			Action: func(cCtx *cli.Context) error {
				if cCtx.NArg() != len(op.args) {
					return cli.Exit(fmt.Sprintf("Usage: %s %s%s", cCtx.App.Name, op.name, argsUsage), 1)
				}
				bits := cCtx.Int("bits")
				if err := validateBits(bits); err != nil {
					return cli.Exit(err.Error(), 1)
				}
				return arithWidth(bits, op.name, cCtx.Args().Slice(), cCtx.App.Writer, log)
			},
		})
	}
	return cmds
}

func arithWidth(bits int, op string, args []string, w io.Writer, log *logrus.Logger) error {
	switch bits {
	case 512:
		return arith[bignum.W512](op, args, w, log)
	case 1024:
		return arith[bignum.W1024](op, args, w, log)
	case 2048:
		return arith[bignum.W2048](op, args, w, log)
	case 4096:
		return arith[bignum.W4096](op, args, w, log)
	case 8192:
		return arith[bignum.W8192](op, args, w, log)
	}
	return cli.Exit(validateBits(bits).Error(), 1)
}

func arith[A bignum.Words](op string, args []string, w io.Writer, log *logrus.Logger) error {
	names := []string{"a", "b", "m"}
	vals := make([]bignum.Int[A], len(args))
	for i, s := range args {
		if err := vals[i].SetHex(s); err != nil {
			log.WithError(err).Debugf("loading %s", names[i])
			return cli.Exit(fmt.Sprintf("Failed to load %s, invalid or too long?", names[i]), 1)
		}
		log.Debugf("%s=%s", names[i], &vals[i])
	}

	r := &vals[0]
	switch op {
	case "add":
		r.Add(&vals[1])
	case "sub":
		r.Sub(&vals[1])
	case "mulmod", "expmod":
		m := &vals[2]
		if m.IsZero() {
			return cli.Exit("m must not be zero", 1)
		}
		if r.Cmp(m) >= 0 {
			return cli.Exit("a must be less than m", 1)
		}
		if op == "mulmod" {
			r.ModMul(&vals[1], m)
		} else {
			r.ModExp(&vals[1], m)
		}
	default:
		return cli.Exit(fmt.Sprintf("unknown operation %s", op), 1)
	}

	_, err := fmt.Fprintf(w, "r=%s\n", r)
	return err
}
