package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zmajumder/portfolio/internal/compose"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Compose a message to the site owner and print its mailto link",
	Long: `contact builds the same prefilled message as the site's contact form and prints
a mailto link for your own mail client. Nothing is sent.

Fields not given as flags are prompted for when running in a terminal.`,
	RunE: runContact,
}

func init() {
	contactCmd.Flags().String("name", "", "your name")
	contactCmd.Flags().String("email", "", "your email address")
	contactCmd.Flags().String("message", "", "the message")
	contactCmd.Flags().Bool("show", false, "also print the subject and body")
	rootCmd.AddCommand(contactCmd)
}

func runContact(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	site, err := loadSite(cfg)
	if err != nil {
		return err
	}

	var msg compose.Message
	msg.Name, _ = cmd.Flags().GetString("name")
	msg.Email, _ = cmd.Flags().GetString("email")
	msg.Message, _ = cmd.Flags().GetString("message")

	if msg.Validate() != nil && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := promptMessage(&msg); err != nil {
			return err
		}
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	composed := compose.Compose(site.Email, msg)
	out := cmd.OutOrStdout()
	if show, _ := cmd.Flags().GetBool("show"); show {
		fmt.Fprintf(out, "To: %s\nSubject: %s\n\n%s\n\n", composed.To, composed.Subject, composed.Body)
	}
	fmt.Fprintln(out, compose.MailtoURL(composed))
	return nil
}

var errRequired = errors.New("required")

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

// promptMessage asks for whichever fields are still blank.
func promptMessage(msg *compose.Message) error {
	var fields []huh.Field
	if strings.TrimSpace(msg.Name) == "" {
		fields = append(fields, huh.NewInput().
			Title("Name").
			Placeholder("Jane Doe").
			Value(&msg.Name).
			Validate(required))
	}
	if strings.TrimSpace(msg.Email) == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@company.com").
			Value(&msg.Email).
			Validate(required))
	}
	if strings.TrimSpace(msg.Message) == "" {
		fields = append(fields, huh.NewText().
			Title("Message").
			Placeholder("What are you building?").
			Lines(5).
			Value(&msg.Message).
			Validate(required))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return fmt.Errorf("contact form: %w", err)
	}
	return nil
}
