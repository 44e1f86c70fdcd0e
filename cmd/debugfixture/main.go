package main

import (
	"fmt"
	"os"

	"debugfixture/internal/errors"
	"debugfixture/internal/logging"
)

func main() {
	logger := logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.InfoLevel,
	})

	if err := rootCmd.Execute(); err != nil {
		fields := map[string]interface{}{
			"error": err.Error(),
			"code":  string(errors.CodeOf(err)),
		}
		for i, fix := range errors.GetSuggestedFixes(errors.CodeOf(err)) {
			fields[fmt.Sprintf("fix%d", i+1)] = fix.Description
		}
		logger.Error("Command execution failed", fields)
		os.Exit(1)
	}
}
