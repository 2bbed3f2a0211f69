package store

import (
	"context"
	"fmt"

	"github.com/walterairs/just-remember/ent"
	"github.com/walterairs/just-remember/ent/setting"
)

// settingsRepo implements SettingsRepo using the ent client.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Get(ctx context.Context, key, def string) (string, error) {
	s, err := r.client.Setting.Query().
		Where(setting.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return def, nil
		}
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return s.Value, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	err := r.client.Setting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(setting.FieldKey).
		UpdateValue().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// setIfAbsent writes a default without clobbering an existing value.
func (r *settingsRepo) setIfAbsent(ctx context.Context, key, value string) error {
	err := r.client.Setting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(setting.FieldKey).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("seed setting %q: %w", key, err)
	}
	return nil
}
