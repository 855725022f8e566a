package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaiso/Genomix/internal/coreapi"
	"github.com/shaiso/Genomix/internal/domain"
)

// NewClassifierCmd создаёт группу команд для операций над classifier'ами.
func NewClassifierCmd(clientFn func() *coreapi.Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classifier",
		Short: "Manage classifiers in core-service",
	}

	cmd.AddCommand(
		newClassifierClaimCmd(clientFn, outputFn),
		newClassifierReleaseCmd(clientFn, outputFn),
		newClassifierFailCmd(clientFn, outputFn),
	)

	return cmd
}

func newClassifierClaimCmd(clientFn func() *coreapi.Client, outputFn func() *Output) *cobra.Command {
	var capabilities []string

	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim and show the next available classifier",
		Long: "Claim the next classifier from the queue and print it.\n" +
			"The classifier stays claimed by this CLI's worker id; use\n" +
			"'classifier release' to put it back.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			classifiers, err := client.ListClassifiers(cmd.Context(), capabilities)
			if err != nil {
				return err
			}
			if len(classifiers) == 0 {
				out.Success("No classifiers available.")
				return nil
			}

			headers := []string{"ID", "GENES", "DISEASES", "TITLE"}
			rows := make([][]string, len(classifiers))
			for i := range classifiers {
				c := &classifiers[i]
				rows[i] = []string{c.ID, c.GeneParam(), c.DiseaseParam(), c.Title}
			}

			out.Print(headers, rows, classifiers)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&capabilities, "capability", []string{"classifier-search"}, "Capability filter")

	return cmd
}

func newClassifierReleaseCmd(clientFn func() *coreapi.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "release <id>",
		Short: "Release a claimed classifier back to the pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			classifier := &domain.Classifier{ID: args[0]}
			if err := client.ReleaseClassifier(cmd.Context(), classifier); err != nil {
				return fmt.Errorf("release classifier %s: %w", args[0], err)
			}

			out.Success("Classifier %s released.", args[0])
			return nil
		},
	}
}

func newClassifierFailCmd(clientFn func() *coreapi.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "fail <id>",
		Short: "Mark a classifier as failed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			classifier := &domain.Classifier{ID: args[0]}
			if err := client.FailClassifier(cmd.Context(), classifier); err != nil {
				return fmt.Errorf("fail classifier %s: %w", args[0], err)
			}

			out.Success("Classifier %s marked failed.", args[0])
			return nil
		},
	}
}
