package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rolodex/internal/config"
	"github.com/mrz1836/rolodex/internal/contactstore"
	"github.com/mrz1836/rolodex/internal/handoff"
	"github.com/mrz1836/rolodex/internal/kvstore"
	"github.com/mrz1836/rolodex/internal/metrics"
	"github.com/mrz1836/rolodex/internal/output"
	"github.com/mrz1836/rolodex/internal/present"
	"github.com/mrz1836/rolodex/internal/screen"
	"github.com/mrz1836/rolodex/internal/seal"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

//nolint:gochecknoglobals // Swappable for tests, and process-wide counters
var (
	// openStoreFn opens the configured key/value store. Tests replace it.
	openStoreFn = openStore

	// storeMetrics counts contact store traffic for the debug log.
	storeMetrics = &metrics.Metrics{}
)

// CommandContext holds dependencies for CLI commands.
type CommandContext struct {
	Config    *config.Config
	Logger    *config.Logger
	Formatter *output.Formatter
	Contacts  *contactstore.Adapter
	Navigator handoff.Navigator

	closeStore func()
}

// NewCommandContext creates a context with the given dependencies.
func NewCommandContext(
	cfg *config.Config,
	logger *config.Logger,
	formatter *output.Formatter,
) *CommandContext {
	return &CommandContext{
		Config:     cfg,
		Logger:     logger,
		Formatter:  formatter,
		closeStore: func() {},
	}
}

// WithStore wires the contact store adapter over s.
func (c *CommandContext) WithStore(s kvstore.Store) *CommandContext {
	c.Contacts = contactstore.New(kvstore.Instrument(s, storeMetrics),
		contactstore.WithKey(c.Config.Storage.Key),
		contactstore.WithLogger(c.Logger),
	)
	return c
}

// WithNavigator sets where hand-offs go.
func (c *CommandContext) WithNavigator(n handoff.Navigator) *CommandContext {
	c.Navigator = n
	return c
}

// Close releases the store and logs its traffic.
func (c *CommandContext) Close() {
	c.closeStore()
	if c.Contacts != nil && c.Logger != nil {
		c.Logger.Debug("store traffic: %s", storeMetrics.Snapshot())
	}
}

// Truncator builds the address truncator from the display settings.
func (c *CommandContext) Truncator() present.Truncator {
	d := c.Config.GetDisplay()
	return present.Truncator{Threshold: d.TruncateAbove, Head: d.Head, Tail: d.Tail, Ellipsis: d.Ellipsis}
}

// QRConfig builds the terminal QR settings.
func (c *CommandContext) QRConfig() output.QRConfig {
	return output.QRConfig{
		Level:      output.ParseQRLevel(c.Config.QR.Level),
		QuietZone:  c.Config.QR.QuietZone,
		HalfBlocks: c.Config.QR.HalfBlocks,
	}
}

// Messenger returns the status line printer for cmd.
func (c *CommandContext) Messenger(cmd *cobra.Command) *output.Messenger {
	return output.NewMessenger(cmd.OutOrStdout(), cmd.ErrOrStderr(), c.Config.Output.Color == "never")
}

// commandContext builds the context of a command that does not touch the
// contact store.
func commandContext(cmd *cobra.Command) *CommandContext {
	cc := NewCommandContext(cfg, logger, formatter)
	return cc.WithNavigator(newPrinter(cc, cmd.OutOrStdout()))
}

// contactsContext builds the context of a command that reads or writes
// contacts. The caller must Close it.
func contactsContext(cmd *cobra.Command) (*CommandContext, error) {
	cc := commandContext(cmd)
	s, closeFn, err := openStoreFn(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	cc.closeStore = closeFn
	return cc.WithStore(s), nil
}

// newPrinter writes hand-offs to w. In text mode QR requests open the QR
// screen.
func newPrinter(cc *CommandContext, w io.Writer) *handoff.Printer {
	p := handoff.NewPrinter(w, cc.Formatter.Format())
	if cc.Formatter.IsJSON() {
		return p
	}
	p.QR = func(_ context.Context, req handoff.QRRequest) error {
		return screen.NewQR(req, cc.QRConfig()).Render(w)
	}
	return p
}

// openStore opens the configured backend, asking for the passphrase when
// the backend encrypts with one.
func openStore(_ context.Context, c *config.Config) (kvstore.Store, func(), error) {
	st := c.GetStorage()
	opts := kvstore.Options{
		Backend:        st.Backend,
		Dir:            st.Dir,
		KeyringService: st.KeyringService,
		WorkFactor:     st.WorkFactor,
	}

	if kvstore.NeedsPassphrase(st.Backend) {
		pass, err := readPassphrase()
		if err != nil {
			return nil, func() {}, err
		}
		defer seal.Zero(pass)
		opts.Passphrase = pass
	}

	s, closeFn, err := kvstore.Open(opts)
	if errors.Is(err, kvstore.ErrKeyringUnavailable) {
		return nil, closeFn, rdxerr.WithSuggestion(rdxerr.WithCause(rdxerr.ErrStorageRead, err),
			"unlock the OS keychain, or use the encrypted file store with --storage file")
	}
	if err != nil {
		return nil, closeFn, rdxerr.WithCause(rdxerr.ErrConfigInvalid, err)
	}
	logger.Debug("opened %s store", st.Backend)
	return s, closeFn, nil
}
