package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/frudas24/deskmouse/internal/observability"
	"github.com/frudas24/deskmouse/mouse"
)

// pointer is a mouse.Pointer that owns platform resources.
type pointer interface {
	mouse.Pointer
	Close() error
}

// openPointer opens the platform mouse. Tests replace it with a fake.
var openPointer = func(display string, log zerolog.Logger) (pointer, error) {
	return mouse.New(mouse.WithDisplay(display), mouse.WithLogger(log))
}

// newApp builds the CLI.
func newApp() *cli.App {
	return &cli.App{
		Name:  "mousectl",
		Usage: "move, click and scroll the system pointer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "display",
				Usage:   "X11 display to connect to (Linux only)",
				EnvVars: []string{"X_DISPLAY"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "trace, debug, info, warn, error or disabled",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "move",
				Usage:     "move the cursor to absolute screen coordinates",
				ArgsUsage: "X Y",
				Action: withPointer(func(c *cli.Context, p pointer) error {
					if c.NArg() != 2 {
						return cli.Exit("move needs X and Y", 2)
					}
					x, err := intArg(c, 0)
					if err != nil {
						return err
					}
					y, err := intArg(c, 1)
					if err != nil {
						return err
					}
					return p.MoveTo(x, y)
				}),
			},
			buttonCommand("press", "press and hold a button", pointer.Press),
			buttonCommand("release", "release a button", pointer.Release),
			buttonCommand("click", "press and release a button", pointer.Click),
			{
				Name:      "scroll",
				Usage:     "scroll by N notches (positive is up or right; use -- before negative values)",
				ArgsUsage: "N",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "horizontal", Aliases: []string{"H"}, Usage: "scroll the horizontal wheel"},
				},
				Action: withPointer(func(c *cli.Context, p pointer) error {
					if c.NArg() != 1 {
						return cli.Exit("scroll needs N", 2)
					}
					n, err := intArg(c, 0)
					if err != nil {
						return err
					}
					if c.Bool("horizontal") {
						return p.HWheel(n)
					}
					return p.Wheel(n)
				}),
			},
			{
				Name:  "position",
				Usage: "print the cursor position",
				Action: withPointer(func(c *cli.Context, p pointer) error {
					pt, err := p.Position()
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(c.App.Writer, "%d %d\n", pt.X, pt.Y)
					return err
				}),
			},
			serveCommand(),
		},
	}
}

// buttonCommand builds press/release/click, which share a BUTTON argument.
func buttonCommand(name, usage string, op func(pointer, mouse.Button) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[left|right|middle|x1|x2]",
		Action: withPointer(func(c *cli.Context, p pointer) error {
			b, err := mouse.ParseButton(c.Args().First())
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			return op(p, b)
		}),
	}
}

// withPointer opens the pointer for a single command and closes it afterwards.
func withPointer(fn func(*cli.Context, pointer) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		log := observability.InitLogger("mousectl", c.String("log-level"))
		p, err := openPointer(c.String("display"), log)
		if err != nil {
			return err
		}
		defer p.Close()
		return fn(c, p)
	}
}

// intArg parses positional argument i as an int.
func intArg(c *cli.Context, i int) (int, error) {
	raw := c.Args().Get(i)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, cli.Exit(fmt.Sprintf("argument %d: %q is not an integer", i+1, raw), 2)
	}
	return v, nil
}
