package cmd

import (
	"github.com/HotpotSnowguy/yeet/internal/launch"
	"github.com/HotpotSnowguy/yeet/internal/picker"
	"github.com/spf13/cobra"
)

func runPicker(_ *cobra.Command, _ []string) error {
	unlock, err := acquireInstanceLock()
	if err != nil {
		return err
	}
	defer unlock()

	s, err := loadSession()
	if err != nil {
		return err
	}

	app, ok, err := picker.Run(picker.New(s.catalog, s.index, s.cfg.SearchConfig(), s.matcher))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return launch.Launch(app, s.cfg.General.Terminal)
}
