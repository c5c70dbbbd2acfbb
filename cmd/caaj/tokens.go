package main

import (
	"context"
	"encoding/csv"
	"os"
	"sort"

	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/tokentable"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the token original id table rows of a chain",
		RunE:  runTokens,
	}
	cmd.Flags().String("chain", "", "chain to list (config chain when empty)")
	cmd.Flags().String("token-table", "", "token original id CSV, overrides token_table.path")
	return cmd
}

func runTokens(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, func(c *config.Config) {
		if v, _ := cmd.Flags().GetString("token-table"); v != "" {
			c.TokenTable.Path = v
		}
	})
	if err != nil {
		return err
	}
	chainName, _ := cmd.Flags().GetString("chain")
	if chainName == "" {
		chainName = cfg.Chain
	}

	table, err := tokentable.Load(context.Background(), cfg.TokenTable)
	if err != nil {
		return err
	}

	var rows []tokentable.Row
	for _, r := range table.Rows() {
		if r.Chain == chainName {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].OriginalID < rows[j].OriginalID })

	w := csv.NewWriter(os.Stdout)
	_ = w.Write([]string{"symbol_uuid", "symbol", "chain", "original_id"})
	for _, r := range rows {
		if err := w.Write([]string{r.SymbolUUID, r.Symbol, r.Chain, r.OriginalID}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
