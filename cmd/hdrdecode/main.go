// hdrdecode prints the headers of an RFC 822 message, or of every message
// in an mbox file, with RFC 2047 encoded-words decoded to UTF-8.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/textproto"
	"os"
	"sort"

	"github.com/emersion/go-mbox"
	"github.com/spf13/cobra"

	"github.com/modfin/rfc2047"
	_ "github.com/modfin/rfc2047/encoding"
)

var (
	flagMbox    bool
	flagFields  []string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hdrdecode [file]",
	Short: "Decode RFC 2047 encoded-words in message headers",
	Long: `hdrdecode reads an RFC 822 message (stdin when no file is given) and
prints its header fields with encoded-words decoded to UTF-8. With --mbox
the input is treated as an mbox file and the selected fields are printed
for every message in it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		rfc2047.Dec.Log = log

		in := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		if flagMbox {
			return dumpMbox(cmd.OutOrStdout(), in, log)
		}
		return dumpMessage(cmd.OutOrStdout(), in)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&flagMbox, "mbox", false, "treat the input as an mbox file")
	rootCmd.Flags().StringSliceVar(&flagFields, "field", []string{"Subject", "From", "To", "Date"},
		"header fields to print in mbox mode")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log undecodable encoded-words")
}

// dumpMessage prints every header field of a single message, decoded.
func dumpMessage(w io.Writer, r io.Reader) error {
	h, err := rfc2047.ReadHeader(r)
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	rfc2047.Dec.DecodeHeader(h)

	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range h[k] {
			fmt.Fprintf(w, "%s: %s\n", k, v)
		}
	}
	return nil
}

// dumpMbox prints the selected fields of every message in an mbox file.
func dumpMbox(w io.Writer, r io.Reader, log *slog.Logger) error {
	mr := mbox.NewReader(r)
	for n := 0; ; n++ {
		msg, err := mr.NextMessage()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("mbox message %d: %w", n, err)
		}
		h, err := rfc2047.ReadHeader(msg)
		if err != nil {
			log.Warn("skipping message with unreadable header", "index", n, "err", err)
			continue
		}
		if n > 0 {
			fmt.Fprintln(w)
		}
		for _, field := range flagFields {
			v := h.Get(textproto.CanonicalMIMEHeaderKey(field))
			if v == "" {
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", textproto.CanonicalMIMEHeaderKey(field), rfc2047.DecodeText(v))
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
