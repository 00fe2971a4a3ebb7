package client

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-otp-vault/internal/app"
	"github.com/MKhiriev/go-otp-vault/internal/backup"
	"github.com/MKhiriev/go-otp-vault/internal/logger"
	"github.com/MKhiriev/go-otp-vault/internal/otp"
	"github.com/MKhiriev/go-otp-vault/internal/service"
	"github.com/MKhiriev/go-otp-vault/internal/utils"
	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
	"github.com/MKhiriev/go-otp-vault/internal/workers"
	"github.com/MKhiriev/go-otp-vault/models"
)

type App struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	clipboard Clipboard
	in        *bufio.Reader
	out       io.Writer
	prompt    io.Writer
}

// Option configures an App.
type Option func(*App)

// WithIO replaces stdin, stdout and the stream password prompts go to
// (stderr by default).
func WithIO(in io.Reader, out, prompt io.Writer) Option {
	return func(a *App) {
		a.in = bufio.NewReader(in)
		a.out = out
		a.prompt = prompt
	}
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

func NewApp(services *service.Services, buildInfo models.AppBuildInfo, opts ...Option) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}

	a := &App{
		services:  services,
		buildInfo: buildInfo,
		clipboard: utils.NewClipboard(),
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		prompt:    os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Run implements Client.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, app.MsgUsage)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	logger.FromContext(ctx).Debug().Str("func", "App.Run").Str("command", command).Msg("running command")

	switch command {
	case "add":
		return a.add(ctx, rest)
	case "list":
		return a.list(ctx)
	case "code":
		return a.code(ctx, "code", rest, a.services.OTPService.Preview)
	case "next":
		return a.code(ctx, "next", rest, a.services.OTPService.NextHOTPCode)
	case "delete":
		return a.delete(ctx, rest)
	case "watch":
		return a.watch(ctx)
	case "export":
		return a.export(ctx, rest)
	case "import":
		return a.importFrames(ctx, rest)
	case "signatures":
		return a.signatures()
	case "version":
		return a.version()
	case "help":
		fmt.Fprintln(a.out, app.MsgUsage)
		return nil
	default:
		fmt.Fprintln(a.out, app.MsgUsage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) add(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: add <otpauth-uri>", ErrMissingArgument)
	}

	code, err := a.services.OTPService.AddFromURI(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "added %s %s\n", code.ID, label(code))
	return nil
}

func (a *App) list(ctx context.Context) error {
	codes, failures, err := a.services.OTPService.List(ctx)
	if err != nil {
		return err
	}
	if len(codes) == 0 && len(failures) == 0 {
		fmt.Fprintln(a.out, app.MsgNoEntries)
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tLABEL\tDIGITS")
	for _, c := range codes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", c.ID, c.Kind, label(c), c.Digits)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	a.printFailures(failures)
	return nil
}

type previewFunc func(ctx context.Context, id string) (models.OTPPreview, error)

func (a *App) code(ctx context.Context, name string, args []string, render previewFunc) error {
	fs := a.newFlagSet(name)
	copyCode := fs.Bool("copy", false, "copy the code to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: %s [-copy] <id>", ErrMissingArgument, name)
	}

	preview, err := render(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if preview.ValidFor > 0 {
		fmt.Fprintf(a.out, "%s  valid for %s\n", preview.Code, preview.ValidFor)
	} else {
		fmt.Fprintf(a.out, "%s  counter %d\n", preview.Code, preview.Counter)
	}

	if !*copyCode {
		return nil
	}
	if !a.clipboard.Available() {
		return errors.New(app.MsgClipboardUnavailable)
	}
	if err := a.clipboard.Copy(preview.Code); err != nil {
		return err
	}
	fmt.Fprintln(a.out, app.MsgCopiedToClipboard)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <id>", ErrMissingArgument)
	}
	if err := a.services.OTPService.Delete(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", args[0])
	return nil
}

// watch runs one ticker per distinct TOTP period and prints the codes of
// that period whenever they roll over. It returns when ctx is cancelled.
func (a *App) watch(ctx context.Context) error {
	codes, failures, err := a.services.OTPService.List(ctx)
	if err != nil {
		return err
	}
	a.printFailures(failures)

	byPeriod := make(map[uint64][]models.OTPCode)
	for _, c := range codes {
		if c.Kind == models.KindTOTP {
			byPeriod[c.Period] = append(byPeriod[c.Period], c)
		}
	}
	if len(byPeriod) == 0 {
		return ErrNothingToWatch
	}

	var mu sync.Mutex
	w := workers.NewWorkers()
	for _, period := range slices.Sorted(maps.Keys(byPeriod)) {
		entries := byPeriod[period]
		w.Add(workers.NewTOTPTicker(time.Duration(period)*time.Second, func(_ context.Context, now time.Time) error {
			mu.Lock()
			defer mu.Unlock()

			for _, c := range entries {
				preview, err := otp.Preview(c, now)
				if err != nil {
					return fmt.Errorf("render %s: %w", c.ID, err)
				}
				fmt.Fprintf(a.out, "%s  %s  %s  %ds\n",
					now.Format(time.TimeOnly), preview.Code, label(c), int(preview.ValidFor.Seconds()))
			}
			return nil
		}))
	}

	return w.Run(ctx)
}

func (a *App) export(ctx context.Context, args []string) error {
	fs := a.newFlagSet("export")
	dir := fs.String("out", ".", "directory the frame files are written to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := a.readPassword()
	if err != nil {
		return err
	}
	frames, err := a.services.BackupService.Export(ctx, password)
	clear(password)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*dir, 0o700); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, f := range frames {
		base := filepath.Join(*dir, fmt.Sprintf("shard-%03d", f.Index))
		if err := os.WriteFile(base+".txt", []byte(f.Payload), 0o600); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		if f.PNG == nil {
			continue
		}
		if err := os.WriteFile(base+".png", f.PNG, 0o600); err != nil {
			return fmt.Errorf("write frame image: %w", err)
		}
	}

	fmt.Fprintf(a.out, "wrote %d frames to %s\n", len(frames), *dir)
	return nil
}

// importFrames feeds frame files to an import session in the given order.
// Files of another export are ignored by the session.
func (a *App) importFrames(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: import <frame-file>...", ErrMissingArgument)
	}

	session := a.services.BackupService.NewImportSession()
	var progress backup.Progress
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}
		if progress, err = session.Add(bytes.TrimSpace(data)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(a.out, "%s  %d/%d\n", filepath.Base(path), progress.Seen, progress.Total)
	}
	if !progress.Ready {
		fmt.Fprintln(a.out, app.MsgBackupIncomplete)
		return ErrBackupIncomplete
	}

	password, err := a.readPassword()
	if err != nil {
		return err
	}
	restored, failures, err := a.services.BackupService.Import(ctx, session, password)
	clear(password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "restored %d entries\n", len(restored))
	a.printFailures(failures)
	return nil
}

func (a *App) signatures() error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, sig := range vaultkey.Signatures() {
		d, err := vaultkey.Lookup(sig)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", sig, d.AlgorithmIdentifier())
	}
	return tw.Flush()
}

func (a *App) version() error {
	fmt.Fprintln(a.out, a.buildInfo)
	return nil
}

func (a *App) readPassword() ([]byte, error) {
	fmt.Fprint(a.prompt, app.MsgEnterPassword)

	line, err := a.in.ReadBytes('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

func (a *App) printFailures(failures []models.OTPDecodeFailure) {
	for _, f := range failures {
		fmt.Fprintf(a.out, "%s %s: %v\n", app.MsgEntrySkipped, f.ID, f.Err)
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func label(code models.OTPCode) string {
	if code.Issuer == "" {
		return code.AccountName
	}
	return code.Issuer + ":" + code.AccountName
}
