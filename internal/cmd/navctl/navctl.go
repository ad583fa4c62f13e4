// Package navctl parses navctl flags and runs one command against the
// company site API.
package navctl

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/zaqqye/navodaya_web/internal/admin"
	"github.com/zaqqye/navodaya_web/internal/apiclient"
	"github.com/zaqqye/navodaya_web/internal/config"
	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/session"
	"github.com/zaqqye/navodaya_web/internal/site"
	"github.com/zaqqye/navodaya_web/internal/toast"
)

const usage = `usage: navctl [flags] <command> [args]

public:
  services | projects | company          landing page lists (bundled data)
  service <id> | project <id>            detail view, live with bundled fallback
  contact -name N -email E -message M    send the contact form

admin:
  login -username U -password P
  logout
  dashboard
  company-set [-name ...] [-phone ...]   partial company update
  service-create | service-update <id> | service-delete <id>
  project-create | project-update <id> | project-delete <id>
  message-delete <id>
`

var ErrUsage = errors.New("navctl: bad usage")

type Config struct {
	BackendURL string
	TokenFile  string
	Timeout    time.Duration
	Command    string
	Args       []string
}

// ParseConfig reads BACKEND_URL and NAVCTL_TOKEN_FILE, then lets flags
// override them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	env, err := config.LoadClient()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{BackendURL: env.BackendURL, TokenFile: env.TokenFile}
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "backend base URL; /api is appended")
	fs.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "file holding the admin session token")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "per-command timeout (0 = none)")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, fmt.Errorf("%w: missing command", ErrUsage)
	}
	cfg.Command, cfg.Args = rest[0], rest[1:]
	return cfg, nil
}

type app struct {
	out      io.Writer
	logger   *log.Logger
	api      *apiclient.Client
	flow     *admin.Flow
	resolver *site.Resolver
}

// Run executes cfg.Command, writing results to out.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	store := session.NewFileStore(cfg.TokenFile)
	api := apiclient.New(cfg.BackendURL, store)
	a := &app{
		out:      out,
		logger:   logger,
		api:      api,
		flow:     admin.NewFlow(api, store, logger),
		resolver: site.NewResolver(api, logger),
	}

	cmd, ok := commands[cfg.Command]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cfg.Command)
	}
	return cmd(a, ctx, cfg.Args)
}

type command func(a *app, ctx context.Context, args []string) error

var commands = map[string]command{
	"services":       (*app).services,
	"projects":       (*app).projects,
	"company":        (*app).company,
	"service":        (*app).serviceDetail,
	"project":        (*app).projectDetail,
	"contact":        (*app).contact,
	"login":          (*app).login,
	"logout":         (*app).logout,
	"dashboard":      (*app).dashboard,
	"company-set":    (*app).companySet,
	"service-create": (*app).serviceCreate,
	"service-update": (*app).serviceUpdate,
	"service-delete": (*app).serviceDelete,
	"project-create": (*app).projectCreate,
	"project-update": (*app).projectUpdate,
	"project-delete": (*app).projectDelete,
	"message-delete": (*app).messageDelete,
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printToast(t toast.Toast) {
	fmt.Fprintln(a.out, t.String())
}

func oneID(args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%w: expected exactly one id", ErrUsage)
	}
	return args[0], nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Public

func (a *app) services(ctx context.Context, _ []string) error {
	for _, s := range a.resolver.Services() {
		g, _ := site.IconFor(s.Icon)
		fmt.Fprintf(a.out, "%s  %s %s\n", s.ID, g.Symbol, s.Category)
	}
	return nil
}

func (a *app) projects(ctx context.Context, _ []string) error {
	for _, p := range a.resolver.Projects() {
		fmt.Fprintf(a.out, "%s  %s (%s, %s)\n", p.ID, p.Title, p.Category, p.Year)
	}
	return nil
}

func (a *app) company(ctx context.Context, _ []string) error {
	return a.printJSON(a.resolver.Company())
}

func (a *app) serviceDetail(ctx context.Context, args []string) error {
	id, err := oneID(args)
	if err != nil {
		return err
	}
	d, err := a.resolver.ServiceDetail(ctx, id)
	if err != nil {
		return err
	}
	a.logger.Printf("service %s resolved from %s data", id, d.Source)
	return a.printJSON(d.Service)
}

func (a *app) projectDetail(ctx context.Context, args []string) error {
	id, err := oneID(args)
	if err != nil {
		return err
	}
	d, err := a.resolver.ProjectDetail(ctx, id)
	if err != nil {
		return err
	}
	a.logger.Printf("project %s resolved from %s data", id, d.Source)
	return a.printJSON(d.Project)
}

func (a *app) contact(ctx context.Context, args []string) error {
	var form site.ContactForm
	fs := newFlagSet("contact")
	fs.StringVar(&form.Name, "name", "", "your name")
	fs.StringVar(&form.Email, "email", "", "your email")
	fs.StringVar(&form.Message, "message", "", "message body")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	t := form.Submit(ctx, a.api)
	a.printToast(t)
	if t.IsError() {
		return errors.New(t.Description)
	}
	return nil
}

// Admin

func (a *app) login(ctx context.Context, args []string) error {
	var username, password string
	fs := newFlagSet("login")
	fs.StringVar(&username, "username", "", "admin username")
	fs.StringVar(&password, "password", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	t, err := a.flow.Login(ctx, username, password)
	a.printToast(t)
	return err
}

func (a *app) logout(ctx context.Context, _ []string) error {
	t, err := a.flow.Logout()
	a.printToast(t)
	return err
}

func (a *app) dashboard(ctx context.Context, _ []string) error {
	d, t, err := a.flow.LoadDashboard(ctx)
	if err != nil {
		if t.Title != "" {
			a.printToast(t)
		}
		return err
	}
	fmt.Fprintf(a.out, "%s\n", d.Company.Name)
	fmt.Fprintf(a.out, "services: %d  projects: %d  messages: %d (%d unread)\n",
		d.ServiceCount, d.ProjectCount, d.MessageCount, d.UnreadCount)
	for _, m := range d.Messages {
		fmt.Fprintf(a.out, "- [%s] %s <%s> %s: %s\n",
			m.ID, m.Name, m.Email, m.CreatedAt.Format(time.RFC3339), m.Message)
	}
	return nil
}

// optString registers a flag whose pointer stays nil unless the flag is set.
type optString struct{ v **string }

func (o optString) String() string {
	if o.v == nil || *o.v == nil {
		return ""
	}
	return **o.v
}

func (o optString) Set(s string) error {
	*o.v = &s
	return nil
}

// listFlag takes a comma separated list.
type listFlag struct{ v *[]string }

func (l listFlag) String() string {
	if l.v == nil {
		return ""
	}
	return strings.Join(*l.v, ",")
}

func (l listFlag) Set(s string) error {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	*l.v = out
	return nil
}

func (a *app) companySet(ctx context.Context, args []string) error {
	var upd apiclient.CompanyUpdate
	var lat, lng float64
	fs := newFlagSet("company-set")
	fs.Var(optString{&upd.Name}, "name", "")
	fs.Var(optString{&upd.Tagline}, "tagline", "")
	fs.Var(optString{&upd.Subline}, "subline", "")
	fs.Var(optString{&upd.Description}, "description", "")
	fs.Var(optString{&upd.Mission}, "mission", "")
	fs.Var(optString{&upd.Phone}, "phone", "")
	fs.Var(optString{&upd.Email}, "email", "")
	fs.Var(optString{&upd.Address}, "address", "")
	fs.Var(optString{&upd.MapLink}, "map-link", "")
	fs.Var(optString{&upd.Logo}, "logo", "")
	fs.Float64Var(&lat, "lat", 0, "")
	fs.Float64Var(&lng, "lng", 0, "")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	setCoords := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "lat" || f.Name == "lng" {
			setCoords = true
		}
	})
	if setCoords {
		upd.Coordinates = &models.Coordinates{Lat: lat, Lng: lng}
	}
	company, err := a.flow.SaveCompany(ctx, upd)
	if err != nil {
		return err
	}
	return a.printJSON(company)
}

func serviceFlags(fs *flag.FlagSet, upd *apiclient.ServiceUpdate) {
	fs.Var(optString{&upd.Category}, "category", "")
	fs.Var(optString{&upd.Description}, "description", "")
	fs.Var(optString{&upd.DetailedContent}, "detailed-content", "")
	fs.Var(listFlag{&upd.Features}, "features", "comma separated")
	fs.Func("icon", "server, network or briefcase", func(s string) error {
		icon := models.ServiceIcon(s)
		if !icon.Valid() {
			return fmt.Errorf("invalid icon %q", s)
		}
		upd.Icon = &icon
		return nil
	})
}

func (a *app) serviceCreate(ctx context.Context, args []string) error {
	var upd apiclient.ServiceUpdate
	fs := newFlagSet("service-create")
	serviceFlags(fs, &upd)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if upd.Category == nil || upd.Icon == nil || upd.Description == nil {
		return fmt.Errorf("%w: -category, -icon and -description are required", ErrUsage)
	}
	in := apiclient.ServiceInput{
		Category:        *upd.Category,
		Icon:            *upd.Icon,
		Description:     *upd.Description,
		Features:        upd.Features,
		DetailedContent: upd.DetailedContent,
	}
	if in.Features == nil {
		in.Features = []string{}
	}
	svc, err := a.flow.CreateService(ctx, in)
	if err != nil {
		return err
	}
	return a.printJSON(svc)
}

func (a *app) serviceUpdate(ctx context.Context, args []string) error {
	var upd apiclient.ServiceUpdate
	fs := newFlagSet("service-update")
	serviceFlags(fs, &upd)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	id, err := oneID(fs.Args())
	if err != nil {
		return err
	}
	svc, err := a.flow.UpdateService(ctx, id, upd)
	if err != nil {
		return err
	}
	return a.printJSON(svc)
}

func (a *app) serviceDelete(ctx context.Context, args []string) error {
	id, err := oneID(args)
	if err != nil {
		return err
	}
	if err := a.flow.DeleteService(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "service %s deleted\n", id)
	return nil
}

func projectFlags(fs *flag.FlagSet, upd *apiclient.ProjectUpdate) {
	fs.Var(optString{&upd.Title}, "title", "")
	fs.Var(optString{&upd.Category}, "category", "")
	fs.Var(optString{&upd.Description}, "description", "")
	fs.Var(optString{&upd.Year}, "year", "")
	fs.Var(optString{&upd.Image}, "image", "")
	fs.Var(optString{&upd.DetailedContent}, "detailed-content", "")
	fs.Var(listFlag{&upd.Technologies}, "technologies", "comma separated")
}

func (a *app) projectCreate(ctx context.Context, args []string) error {
	var upd apiclient.ProjectUpdate
	fs := newFlagSet("project-create")
	projectFlags(fs, &upd)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if upd.Title == nil || upd.Category == nil || upd.Description == nil || upd.Year == nil || upd.Image == nil {
		return fmt.Errorf("%w: -title, -category, -description, -year and -image are required", ErrUsage)
	}
	p, err := a.flow.CreateProject(ctx, apiclient.ProjectInput{
		Title:           *upd.Title,
		Category:        *upd.Category,
		Description:     *upd.Description,
		Year:            *upd.Year,
		Image:           *upd.Image,
		DetailedContent: upd.DetailedContent,
		Technologies:    upd.Technologies,
	})
	if err != nil {
		return err
	}
	return a.printJSON(p)
}

func (a *app) projectUpdate(ctx context.Context, args []string) error {
	var upd apiclient.ProjectUpdate
	fs := newFlagSet("project-update")
	projectFlags(fs, &upd)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	id, err := oneID(fs.Args())
	if err != nil {
		return err
	}
	p, err := a.flow.UpdateProject(ctx, id, upd)
	if err != nil {
		return err
	}
	return a.printJSON(p)
}

func (a *app) projectDelete(ctx context.Context, args []string) error {
	id, err := oneID(args)
	if err != nil {
		return err
	}
	if err := a.flow.DeleteProject(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "project %s deleted\n", id)
	return nil
}

func (a *app) messageDelete(ctx context.Context, args []string) error {
	id, err := oneID(args)
	if err != nil {
		return err
	}
	if err := a.flow.DeleteMessage(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "message %s deleted\n", id)
	return nil
}
