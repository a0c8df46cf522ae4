package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/case-framework/contact-manager/pkg/apihelpers"
	contactsclient "github.com/case-framework/contact-manager/pkg/contacts-client"
	contactsui "github.com/case-framework/contact-manager/pkg/contacts-ui"
)

var version = "dev"

// CLI holds the flags of the contacts terminal client.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version." short:"V"`
	APIURL   string           `name:"api-url" help:"Contacts API root URL." default:"http://localhost:5000/api" env:"CONTACTS_API_URL"`
	PageSize int64            `help:"Initial rows per page (5, 10 or 25)." default:"10" enum:"5,10,25"`
	Timeout  time.Duration    `help:"Timeout for each API call." default:"10s"`

	CertPath   string `name:"cert" help:"Client certificate for mutual TLS." type:"existingfile"`
	KeyPath    string `name:"key" help:"Client key for mutual TLS." type:"existingfile"`
	CACertPath string `name:"ca-cert" help:"CA certificate for mutual TLS." type:"existingfile"`
}

// Run checks the terminal and the API, then starts the UI.
func (c *CLI) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("contacts-tui: requires a terminal (TTY)")
	}

	client, err := contactsclient.NewClient(c.clientConfig())
	if err != nil {
		return fmt.Errorf("contacts-tui: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()
	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("contacts-tui: api not reachable at %s: %w", c.APIURL, err)
	}

	model := contactsui.NewModel(client, contactsui.Config{
		PageSize: c.PageSize,
		Timeout:  c.Timeout,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("contacts-tui: %w", err)
	}
	return nil
}

func (c *CLI) clientConfig() contactsclient.ClientConfig {
	conf := contactsclient.ClientConfig{
		RootURL: c.APIURL,
		Timeout: c.Timeout,
	}
	if c.CertPath != "" && c.KeyPath != "" && c.CACertPath != "" {
		conf.MTLSCertificatePaths = &apihelpers.CertificatePaths{
			ServerCertPath: c.CertPath,
			ServerKeyPath:  c.KeyPath,
			CACertPath:     c.CACertPath,
		}
	}
	return conf
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts-tui"),
		kong.Description("Browse and edit contacts of a contacts API."),
		kong.Vars{"version": version},
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
