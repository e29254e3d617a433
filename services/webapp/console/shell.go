package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"ecommerce-platform/services/webapp/widgets"
)

const helpText = `Commands:
  products          fetch and show the product list again
  show              render all widgets
  username <value>  set the login username
  password <value>  set the login password
  login             submit the login form
  product <value>   set the order product id
  quantity <value>  set the order quantity
  order             submit the order form
  help              show this help
  quit              exit
`

// Shell drives an App from line commands. It also acts as the app's
// Notifier: an alert is printed and blocks until the next input line.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewShell(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (s *Shell) Alert(message string) {
	fmt.Fprintf(s.out, "[alert] %s\n", message)
	fmt.Fprint(s.out, "(press Enter to continue)\n")
	s.in.Scan()
}

// Run mounts app, renders it and processes commands until quit or end of input.
func (s *Shell) Run(ctx context.Context, app *widgets.App) error {
	app.Mount(ctx)
	fmt.Fprint(s.out, app.Render())
	fmt.Fprint(s.out, "\nType \"help\" for commands.\n")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return s.in.Err()
		}

		command, value := splitCommand(s.in.Text())
		switch command {
		case "":
		case "products":
			app.Products.Mount(ctx)
			fmt.Fprint(s.out, app.Products.Render())
		case "show":
			fmt.Fprint(s.out, app.Render())
		case "username":
			app.Login.SetUsername(value)
		case "password":
			app.Login.SetPassword(value)
		case "login":
			app.Login.Submit(ctx)
		case "product":
			app.Order.SetProductID(value)
		case "quantity":
			app.Order.SetQuantity(value)
		case "order":
			app.Order.Submit(ctx)
		case "help":
			fmt.Fprint(s.out, helpText)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(s.out, "unknown command %q, type \"help\"\n", command)
		}
	}
}

// splitCommand separates the first word from the rest of the line. The
// value keeps inner spaces so fields can hold any typed text.
func splitCommand(line string) (string, string) {
	line = strings.TrimLeft(line, " \t")
	command, value, _ := strings.Cut(line, " ")
	return strings.ToLower(strings.TrimSpace(command)), value
}
