package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/bindgen/witimport"
)

var checkCmd = &cobra.Command{
	Use:   "check <wit.json>...",
	Short: "Load WIT documents and report their interfaces",
	Args:  cobra.MinimumNArgs(1),
	RunE:  checkExecution,
}

func checkExecution(cmd *cobra.Command, args []string) error {
	start := time.Now()
	logger, err := setupLogging(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	p := newPrinter(cmd)
	for _, path := range args {
		ifaces, err := witimport.Load(path, witimport.Options{})
		if err != nil {
			return err
		}
		for _, iface := range ifaces {
			logger.Info("interface",
				zap.String("document", path),
				zap.String("name", iface.Name),
				zap.Int("typedefs", len(iface.TypeDefs)),
				zap.Int("functions", len(iface.Functions)),
				zap.Int("resources", len(iface.Resources())))
			p.status("Checked", "%s (%d types, %d functions, %d resources)",
				p.path(iface.Name), len(iface.TypeDefs), len(iface.Functions), len(iface.Resources()))
		}
	}
	p.finished(start)
	return nil
}
