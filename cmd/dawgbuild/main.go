package main

import (
	"fmt"
	"os"
	"time"

	"github.com/amedhat3/dawg-gen/dawg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outPath  string
	logLevel string

	log = logrus.New()
)

func init() {
	RootCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path for the bit-packed array (prompted for interactively if omitted)")
	RootCmd.Flags().StringVar(&logLevel, "log-level", "info", "logging level: debug, info, warn, error")
}

// RootCmd is the main command for the dawgbuild binary.
var RootCmd = &cobra.Command{
	Use:   "dawgbuild <wordlist>",
	Short: "`dawgbuild` compiles a sorted word list into a Directed Acyclic Word Graph",
	Long:  "`dawgbuild` compiles a sorted word list into a Directed Acyclic Word Graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)
		return run(args[0])
	},
}

// stage logs how long fn took under a "stage" field, the Go analog of
// the original script's clock()-stamped progress lines.
func stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	entry := log.WithFields(logrus.Fields{"stage": name, "elapsed": time.Since(start)})
	if err != nil {
		entry.Debug("stage failed")
		return err
	}
	entry.Debug("stage finished")
	return nil
}

func run(wordlistPath string) error {
	total := time.Now()
	var words []string
	var root *dawg.Node
	var mr *dawg.MinimizeResult
	var cr *dawg.CompressResult
	var fa *dawg.FlatArray
	var enc []byte

	if err := stage("read word list", func() (err error) {
		words, err = readWordList(wordlistPath)
		return err
	}); err != nil {
		return err
	}
	log.WithField("words", len(words)).Info("word list OK")

	if err := stage("build trie", func() (err error) {
		root, err = dawg.BuildTrie(words)
		return err
	}); err != nil {
		return err
	}

	if err := stage("merge redundant nodes", func() error {
		mr = dawg.Minimize(root)
		return nil
	}); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"nodes":      mr.Nodes,
		"duplicates": mr.Duplicates,
		"collisions": mr.Collisions,
	}).Info("merged redundant nodes")

	if err := stage("merge child lists", func() error {
		cr = dawg.Compress(mr.Root)
		return nil
	}); err != nil {
		return err
	}
	log.WithField("groups", len(cr.Groups)).Info("merged child lists")

	if err := stage("create compressed node array", func() error {
		fa = dawg.Linearize(mr.Root, cr.Groups)
		return nil
	}); err != nil {
		return err
	}
	log.WithField("records", len(fa.Records)).Info("created compressed node array")

	if err := stage("check validity", func() error {
		return dawg.Verify(fa, words)
	}); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	log.Info("validity OK")

	if err := stage("export as bit-packed array", func() (err error) {
		enc, err = dawg.Encode(fa)
		return err
	}); err != nil {
		return err
	}

	if outPath == "" {
		path, err := promptForPath(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		outPath = path
	}
	if err := os.WriteFile(outPath, enc, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	log.WithFields(logrus.Fields{
		"out":     outPath,
		"bytes":   len(enc),
		"elapsed": time.Since(total),
	}).Info("compilation finished")
	return nil
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		if err == errQuit {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "dawgbuild: %v\n", err)
		os.Exit(1)
	}
}
