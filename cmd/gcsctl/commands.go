package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	gcs "github.com/micgeronimo/gcs-client"
	"github.com/micgeronimo/gcs-client/gcstypes"
)

var downloadCmd = &cobra.Command{
	Use:   "download <bucket> <object> [dest]",
	Short: "Download an object, optionally writing it to a local file",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		client, err := newClient(logger)
		if err != nil {
			return err
		}

		bucket, object := args[0], args[1]
		var data []byte
		if len(args) == 3 {
			data, err = client.DownloadFile(context.Background(), bucket, object, args[2])
		} else {
			data, err = client.Download(context.Background(), bucket, object)
		}
		if err != nil {
			return err
		}

		if len(args) == 3 {
			logger.Info().Str("bucket", bucket).Str("object", object).
				Str("dest", args[2]).Int("bytes", len(data)).Msg("downloaded object")
		} else {
			cmd.OutOrStdout().Write(data)
		}
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <bucket> <object> <file>",
	Short: "Upload a local file, replacing any existing object of the same name",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		client, err := newClient(logger)
		if err != nil {
			return err
		}

		bucket, object, source := args[0], args[1], args[2]
		contentType, _ := cmd.Flags().GetString("content_type")
		if contentType == "" {
			// Sniff the local file; the library default stays octet-stream.
			if mt, err := mimetype.DetectFile(source); err == nil {
				contentType = mt.String()
			}
		}

		var opts []gcstypes.UploadOption
		if contentType != "" {
			opts = append(opts, gcs.WithContentType(contentType))
		}
		if err := client.Upload(context.Background(), bucket, object, source, opts...); err != nil {
			return err
		}
		logger.Info().Str("bucket", bucket).Str("object", object).
			Str("content_type", contentType).Msg("uploaded object")
		return nil
	},
}

var existsCmd = &cobra.Command{
	Use:   "exists <bucket> <object>",
	Short: "Check whether an object exists",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(newLogger())
		if err != nil {
			return err
		}

		exists, err := client.Exists(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), exists)
		return nil
	},
}

var updatedAfterCmd = &cobra.Command{
	Use:   "updated-after <bucket> <object> <timestamp>",
	Short: "Check whether an object was updated strictly after a timestamp",
	Long: `Check whether an object was updated strictly after the given timestamp.
The timestamp is RFC3339 (2006-01-02T15:04:05Z07:00); when the zone offset is
omitted the timestamp is interpreted as UTC.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold, err := parseThreshold(args[2])
		if err != nil {
			return err
		}

		client, err := newClient(newLogger())
		if err != nil {
			return err
		}

		updated, err := client.IsUpdatedAfter(context.Background(), args[0], args[1], threshold)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), updated)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <bucket> <object>",
	Short: "Delete an object, optionally a specific generation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		client, err := newClient(logger)
		if err != nil {
			return err
		}

		var opts []gcstypes.DeleteOption
		if generation, _ := cmd.Flags().GetInt64("generation"); generation != 0 {
			opts = append(opts, gcs.WithGeneration(generation))
		}

		deleted, err := client.Delete(context.Background(), args[0], args[1], opts...)
		if err != nil {
			return err
		}
		if deleted {
			logger.Info().Str("bucket", args[0]).Str("object", args[1]).Msg("deleted object")
		} else {
			logger.Info().Str("bucket", args[0]).Str("object", args[1]).Msg("object was already absent")
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list <bucket>",
	Short: "List object names in a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(newLogger())
		if err != nil {
			return err
		}

		var opts []gcstypes.ListOption
		if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
			opts = append(opts, gcs.WithPrefix(prefix))
		}
		if versions, _ := cmd.Flags().GetBool("versions"); versions {
			opts = append(opts, gcs.WithVersions(true))
		}
		if maxResults, _ := cmd.Flags().GetInt64("max_results"); maxResults > 0 {
			opts = append(opts, gcs.WithMaxResults(maxResults))
		}

		names, err := client.List(context.Background(), args[0], opts...)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

// parseThreshold accepts RFC3339 timestamps and, per the client's documented
// policy, interprets zone-less timestamps as UTC.
func parseThreshold(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	ts, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: expected RFC3339", s)
	}
	return ts, nil
}

func init() {
	uploadCmd.Flags().String("content_type", "", "MIME type for the object (default: sniffed from the file)")
	deleteCmd.Flags().Int64("generation", 0, "Delete this exact generation instead of the live object")
	listCmd.Flags().String("prefix", "", "Only list objects whose name begins with this prefix")
	listCmd.Flags().Bool("versions", false, "List all versions of each object")
	listCmd.Flags().Int64("max_results", 0, "Page size requested from the service")

	rootCmd.AddCommand(downloadCmd, uploadCmd, existsCmd, updatedAfterCmd, deleteCmd, listCmd)
}
