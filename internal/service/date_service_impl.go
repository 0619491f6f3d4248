package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/nldates/internal/datefmt"
	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/link"
	"github.com/alexanderramin/nldates/internal/repository"
	"github.com/alexanderramin/nldates/internal/resolver"
	"github.com/alexanderramin/nldates/internal/suggest"
)

type dateService struct {
	settings repository.SettingsRepo
	resolver *resolver.Resolver
	logger   *slog.Logger
	observer UseCaseObserver
}

func NewDateService(
	settings repository.SettingsRepo,
	res *resolver.Resolver,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) DateService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &dateService{
		settings: settings,
		resolver: res,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dateService) Parse(ctx context.Context, phrase, pattern string) (domain.ParsedMoment, error) {
	cfg, err := loadDateSettings(ctx, s.settings)
	if err != nil {
		return domain.ParsedMoment{}, err
	}
	return s.parse(ctx, cfg, phrase, pattern), nil
}

func (s *dateService) parse(ctx context.Context, cfg domain.Settings, phrase, pattern string) domain.ParsedMoment {
	m := s.resolver.ResolveFormat(phrase, cfg.WeekStart, pattern)
	if !m.Valid {
		s.logger.DebugContext(ctx, "input date can't be parsed", "phrase", phrase)
	}
	return m
}

// ParseDate renders with the date pattern, adding the time pattern when the
// phrase implies a time of day and the setting allows it. time: phrases are
// rendered with the time pattern.
func (s *dateService) ParseDate(ctx context.Context, phrase string) (domain.ParsedMoment, error) {
	cfg, err := loadDateSettings(ctx, s.settings)
	if err != nil {
		return domain.ParsedMoment{}, err
	}
	return s.parse(ctx, cfg, phrase, datePattern(cfg, phrase)), nil
}

func (s *dateService) ParseTime(ctx context.Context, phrase string) (domain.ParsedMoment, error) {
	cfg, err := loadDateSettings(ctx, s.settings)
	if err != nil {
		return domain.ParsedMoment{}, err
	}
	return s.parse(ctx, cfg, phrase, cfg.TimeFormat), nil
}

func datePattern(cfg domain.Settings, phrase string) string {
	switch {
	case resolver.IsTimeExpression(phrase):
		return cfg.TimeFormat
	case cfg.AppendTimeWhenRelated && resolver.ImpliesTime(phrase):
		return cfg.DateTimeFormat()
	}
	return cfg.DateFormat
}

func (s *dateService) Now(ctx context.Context) (domain.ParsedMoment, error) {
	return s.current(ctx, domain.Settings.DateTimeFormat)
}

func (s *dateService) Today(ctx context.Context) (domain.ParsedMoment, error) {
	return s.current(ctx, func(cfg domain.Settings) string { return cfg.DateFormat })
}

func (s *dateService) CurrentTime(ctx context.Context) (domain.ParsedMoment, error) {
	return s.current(ctx, func(cfg domain.Settings) string { return cfg.TimeFormat })
}

func (s *dateService) current(ctx context.Context, pattern func(domain.Settings) string) (domain.ParsedMoment, error) {
	cfg, err := loadDateSettings(ctx, s.settings)
	if err != nil {
		return domain.ParsedMoment{}, err
	}
	now := s.resolver.Now()
	return domain.NewParsedMoment(now, datefmt.Format(now, pattern(cfg))), nil
}

// Render applies a parse mode to phrase:
//
//	replace  link to the date in the configured link style
//	link     markdown link whose text is the phrase
//	clean    the date alone
//	time     the time alone
func (s *dateService) Render(ctx context.Context, phrase string, mode domain.ParseMode) (out Rendered, err error) {
	done := observe(ctx, s.observer, "render", map[string]any{"mode": string(mode)})
	defer func() { done(&err) }()

	if !domain.ValidParseModes[string(mode)] {
		return Rendered{}, fmt.Errorf("%w: %q", domain.ErrUnknownParseMode, mode)
	}
	cfg, err := loadDateSettings(ctx, s.settings)
	if err != nil {
		return Rendered{}, err
	}

	m := s.parse(ctx, cfg, phrase, datePattern(cfg, phrase))
	if !m.Valid {
		return Rendered{Moment: m}, nil
	}

	switch mode {
	case domain.ModeLink:
		out.Text = link.Compose(m.Formatted, phrase, domain.LinkMarkdown)
	case domain.ModeClean:
		out.Text = m.Formatted
	case domain.ModeTime:
		m = s.parse(ctx, cfg, phrase, cfg.TimeFormat)
		out.Text = m.Formatted
	default:
		out.Text = link.Compose(m.Formatted, "", cfg.LinkStyle)
	}
	out.Moment = m
	return out, nil
}

// Select produces the text inserted for a chosen suggestion. time: labels are
// rendered as plain times; everything else is linked when the toggle is on,
// with the label as alias if includeAlias is set. Unresolvable labels are
// never linked.
func (s *dateService) Select(ctx context.Context, label string, includeAlias bool) (string, error) {
	cfg, err := loadDateSettings(ctx, s.settings)
	if err != nil {
		return "", err
	}
	if resolver.IsTimeExpression(label) {
		return s.parse(ctx, cfg, label, cfg.TimeFormat).Formatted, nil
	}

	m := s.parse(ctx, cfg, label, datePattern(cfg, label))
	if !cfg.AutosuggestToggleLink || !m.Valid {
		return m.Formatted, nil
	}
	alias, _ := link.Alias(label, includeAlias, cfg.DefaultAlias, aliasParser{res: s.resolver, ws: cfg.WeekStart})
	return link.Compose(m.Formatted, alias, cfg.LinkStyle), nil
}

func (s *dateService) Suggest(_ context.Context, query string) ([]domain.Suggestion, error) {
	return suggest.WithFallback(query, nil), nil
}

// Complete detects an active trigger at cursor and returns its suggestions.
// It returns nil when autosuggest is off or no trigger is active.
func (s *dateService) Complete(ctx context.Context, line string, cursor int) (*Completion, error) {
	cfg, err := loadDateSettings(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	if !cfg.AutosuggestEnabled {
		return nil, nil
	}
	trig, ok := suggest.ExtractQuery(line, cursor, cfg.TriggerPhrase)
	if !ok {
		return nil, nil
	}
	return &Completion{Trigger: trig, Suggestions: suggest.WithFallback(trig.Query, nil)}, nil
}

type aliasParser struct {
	res *resolver.Resolver
	ws  domain.WeekStart
}

func (p aliasParser) ParseDate(phrase string) domain.ParsedMoment {
	return p.res.Resolve(phrase, p.ws)
}
