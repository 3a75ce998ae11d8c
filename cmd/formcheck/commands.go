package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/prompt"
	"github.com/dmitrymomot/formkit/pkg/registration"
	"github.com/dmitrymomot/formkit/pkg/ui"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// errRejected is returned by commands whose input failed validation. The
// outcome has already been printed, so it only sets the exit code.
var errRejected = errors.New("input rejected")

type app struct {
	cfg Config
	log *slog.Logger
	// driver overrides the survey prompt driver used by fill.
	driver prompt.Driver
}

// execute runs the command line args and maps the result to an exit code.
func (a *app) execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errRejected):
		return exitRejected
	case errors.Is(err, prompt.ErrAborted):
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitRejected
	default:
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitUsage
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate registration form input",
		Long: `formcheck validates registration form input against the form's rule table.

Configuration is read from the environment and an optional .env file:
FORMCHECK_OUTPUT (text|json), FORMCHECK_LOG_LEVEL, FORMCHECK_LOG_FORMAT,
FORMCHECK_PREFS and APP_ENV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.AddCommand(
		a.rulesCommand(),
		a.checkCommand(),
		a.submitCommand(),
		a.fillCommand(),
		a.themeCommand(),
		a.renderCommand(),
	)
	return root
}

func (a *app) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the rule table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printRules(cmd.OutOrStdout(), registration.Rules())
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	var name, value, password string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a single field",
		Long: `The check command validates one field value. Checking confirmPassword
compares the value against --password.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := registration.ParseField(name)
			if err != nil {
				return err
			}

			values := registration.Values{registration.Password: password}
			values[field] = value
			outcome := registration.EvaluateField(field, values)
			a.log.Debug("field checked", logger.Outcome(field.String(), outcome.Valid, outcome.Message))

			if err := a.printOutcome(cmd.OutOrStdout(), field.String(), outcome); err != nil {
				return fmt.Errorf("print outcome: %w", err)
			}
			if !outcome.Valid {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "field", "f", "", "Field identifier, see the rules command")
	cmd.Flags().StringVar(&value, "value", "", "Raw field value")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password to compare against when checking confirmPassword")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

func (a *app) submitCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate a YAML or JSON record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.readRecord(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			return a.finish(cmd.OutOrStdout(), registration.Submit(values))
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "-", `Record file, "-" reads stdin`)
	return cmd
}

func (a *app) fillCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Fill the form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			driver := a.driver
			if driver == nil {
				driver = prompt.NewSurveyDriver(cmd.OutOrStdout())
			}

			_, res, err := prompt.Fill(cmd.Context(), driver, registration.Form(),
				prompt.WithLabels(registration.Labels()),
				prompt.WithSecretFields(registration.SecretFields()...),
			)
			if err != nil {
				return fmt.Errorf("fill form: %w", err)
			}
			return a.finish(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.newPage()
			if err != nil {
				return err
			}
			printTheme(cmd.OutOrStdout(), page.Theme())
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme and save the choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.newPage()
			if err != nil {
				return err
			}
			theme, err := page.ToggleTheme()
			if err != nil {
				return err
			}
			printTheme(cmd.OutOrStdout(), theme)
			return nil
		},
	})
	return cmd
}

func (a *app) renderCommand() *cobra.Command {
	var (
		path    string
		submit  bool
		faq     int
		openFAQ int
		tabs    []string
		tab     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the registration page as HTML",
		Long: `The render command replays a record into the page as input events and
writes the resulting page markup, with per-field feedback and the saved
theme, to stdout. With --submit the record is also submitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.newPage(ui.WithFAQ(faq), ui.WithTabs(tabs...))
			if err != nil {
				return err
			}
			if openFAQ >= 0 {
				if err := page.FAQ.Toggle(openFAQ); err != nil {
					return err
				}
			}
			if tab != "" && page.Tabs != nil {
				if err := page.Tabs.Select(tab); err != nil {
					return err
				}
			}

			if path != "" {
				values, err := a.readRecord(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				for _, f := range registration.Fields() {
					v, ok := values[f]
					if !ok {
						continue
					}
					if _, err := page.Dispatch(ui.Event{Kind: ui.EventInput, Field: f.String(), Value: v}); err != nil {
						return err
					}
				}
			}
			if submit {
				if _, err := page.Dispatch(ui.Event{Kind: ui.EventSubmit}); err != nil {
					return err
				}
			}

			return ui.PageComponent(page).Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", `Record file to replay, "-" reads stdin`)
	cmd.Flags().BoolVarP(&submit, "submit", "s", false, "Submit the form after replaying the record")
	cmd.Flags().IntVar(&faq, "faq", 3, "Number of FAQ items")
	cmd.Flags().IntVar(&openFAQ, "open", -1, "Index of the FAQ item to open")
	cmd.Flags().StringSliceVar(&tabs, "tabs", []string{"html", "css", "javascript"}, "Tab identifiers")
	cmd.Flags().StringVar(&tab, "tab", "", "Active tab")
	return cmd
}

func (a *app) newPage(opts ...ui.PageOption) (*ui.Page, error) {
	opts = append([]ui.PageOption{
		ui.WithThemeStore(ui.NewFileStore(a.cfg.PrefsPath)),
		ui.WithLogger(a.log),
		ui.WithLabels(registration.Labels()),
		ui.WithSecretFields(registration.SecretFields()...),
	}, opts...)
	return ui.NewPage(registration.Form(), opts...)
}

func (a *app) finish(w io.Writer, res validator.Result) error {
	a.log.Info("form submitted", logger.Accepted(res.Accepted), logger.Failed(res.Failed()))
	if err := a.printResult(w, res); err != nil {
		return fmt.Errorf("print result: %w", err)
	}
	if !res.Accepted {
		return errRejected
	}
	return nil
}

// readRecord decodes a YAML (or JSON) mapping of field identifiers to values.
// Keys the form does not declare are logged and dropped.
func (a *app) readRecord(stdin io.Reader, path string) (registration.Values, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	values := make(registration.Values, len(raw))
	for key, value := range raw {
		field, err := registration.ParseField(key)
		if err != nil {
			a.log.Warn("ignoring unknown field", logger.Field(key))
			continue
		}
		values[field] = value
	}
	return values, nil
}
