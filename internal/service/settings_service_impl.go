package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/nldates/internal/db"
	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSettingsService(
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SettingsService {
	return &settingsService{
		settings: settings,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

type settingApplier func(s *domain.Settings, value string) error

var settingAppliers = map[string]settingApplier{
	"date-format": func(s *domain.Settings, v string) error {
		s.DateFormat = v
		return nil
	},
	"time-format": func(s *domain.Settings, v string) error {
		s.TimeFormat = v
		return nil
	},
	"separator": func(s *domain.Settings, v string) error {
		s.Separator = v
		return nil
	},
	"append-time": func(s *domain.Settings, v string) error {
		s.AppendTimeWhenRelated = domain.ParseTruthy(v)
		return nil
	},
	"week-start": func(s *domain.Settings, v string) error {
		ws, err := domain.ParseWeekStart(v)
		if err != nil {
			return err
		}
		s.WeekStart = ws
		return nil
	},
	"default-alias": func(s *domain.Settings, v string) error {
		s.DefaultAlias = v
		return nil
	},
	"link-style": func(s *domain.Settings, v string) error {
		style, err := domain.ParseLinkStyle(v)
		if err != nil {
			return err
		}
		s.LinkStyle = style
		return nil
	},
	"autosuggest": func(s *domain.Settings, v string) error {
		s.AutosuggestEnabled = domain.ParseTruthy(v)
		return nil
	},
	"toggle-link": func(s *domain.Settings, v string) error {
		s.AutosuggestToggleLink = domain.ParseTruthy(v)
		return nil
	},
	"trigger": func(s *domain.Settings, v string) error {
		s.TriggerPhrase = v
		return nil
	},
}

// SettingKeys lists the keys accepted by Set, sorted.
func SettingKeys() []string {
	keys := make([]string, 0, len(settingAppliers))
	for k := range settingAppliers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	cfg, err := loadSettings(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Set changes one setting. The read and write share a transaction so
// concurrent edits to different keys do not lose each other.
func (s *settingsService) Set(ctx context.Context, key, value string) (updated *domain.Settings, err error) {
	done := observe(ctx, s.observer, "settings-set", map[string]any{"key": key})
	defer func() { done(&err) }()

	apply, ok := settingAppliers[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid keys: %s)", domain.ErrUnknownSetting, key, strings.Join(SettingKeys(), ", "))
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSettingsRepo(tx)
		cfg, err := loadSettings(ctx, repo)
		if err != nil {
			return err
		}
		if err := apply(&cfg, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		cfg = cfg.Normalize()
		if err := repo.Upsert(ctx, &cfg); err != nil {
			return err
		}
		updated = &cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *settingsService) Save(ctx context.Context, cfg *domain.Settings) (err error) {
	done := observe(ctx, s.observer, "settings-save", nil)
	defer func() { done(&err) }()

	if _, err = domain.ParseWeekStart(string(cfg.WeekStart)); err != nil {
		return err
	}
	if _, err = domain.ParseLinkStyle(string(cfg.LinkStyle)); err != nil {
		return err
	}
	n := cfg.Normalize()
	return s.settings.Upsert(ctx, &n)
}

func (s *settingsService) Reset(ctx context.Context) (cfg *domain.Settings, err error) {
	done := observe(ctx, s.observer, "settings-reset", nil)
	defer func() { done(&err) }()

	def := domain.DefaultSettings()
	if err = s.settings.Upsert(ctx, &def); err != nil {
		return nil, err
	}
	return &def, nil
}
