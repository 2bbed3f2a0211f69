package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/walterairs/just-remember/internal/store"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read and change persisted settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		def, ok := settingDefaults[key]
		if !ok {
			return fmt.Errorf("unknown setting %q", key)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		value, err := st.Settings().Get(cmd.Context(), key, def)
		if err != nil {
			return fmt.Errorf("read setting: %w", err)
		}
		fmt.Println(value)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateSetting(key, value); err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		if err := st.Settings().Set(cmd.Context(), key, value); err != nil {
			return fmt.Errorf("write setting: %w", err)
		}
		fmt.Printf("%s = %s\n", key, value)
		return nil
	},
}

var settingDefaults = map[string]string{
	store.SettingDailyLessonLimit: store.DefaultDailyLessonLimit,
	store.SettingAutoStartLessons: store.DefaultAutoStartLessons,
}

func validateSetting(key, value string) error {
	switch key {
	case store.SettingDailyLessonLimit:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", key, value)
		}
	case store.SettingAutoStartLessons:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
