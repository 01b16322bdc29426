package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/ledgercheck/internal/custompromauto"
	"github.com/hedisam/ledgercheck/internal/ledger"
	"github.com/hedisam/ledgercheck/internal/validate"
)

type Options struct {
	ChainPath string
	Encoding  ledger.Encoding
	Workers   int
	Verbose   bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ChainPath, "chain", "-", "Path to the JSON chain document to check, '-' reads from stdin")
	flag.TextVar(&opts.Encoding, "encoding", ledger.EncodingConcat, "Message and hash input layout: 'concat' or 'length-prefixed'")
	flag.IntVar(&opts.Workers, "workers", validate.DefaultWorkers, "Number of blocks checked concurrently. Cannot be less than 1")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	chain, err := readChain(opts.ChainPath)
	if err != nil {
		logger.WithError(err).WithField("chain", opts.ChainPath).Fatal("Failed to read chain document")
	}

	v := validate.New(
		validate.WithLogger(logger),
		validate.WithEncoding(opts.Encoding),
		validate.WithWorkers(opts.Workers),
	)
	verdict := v.CheckChain(chain)
	logger.WithFields(logrus.Fields{
		"blocks":   chain.Len(),
		"encoding": opts.Encoding.String(),
		"verdict":  verdict.String(),
	}).Debug("Checked chain")

	if opts.Verbose {
		logCounters(logger)
	}

	renderSummary(chain)
	if !verdict.Valid() {
		pterm.Error.Println("Chain is invalid")
		os.Exit(1)
	}
	pterm.Success.Println("Chain is valid")
}

func readChain(path string) (*ledger.Chain, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open chain file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var chain ledger.Chain
	err := json.NewDecoder(r).Decode(&chain)
	if err != nil {
		return nil, fmt.Errorf("decode chain: %w", err)
	}

	return &chain, nil
}

func renderSummary(chain *ledger.Chain) {
	data := pterm.TableData{{"Block", "Transactions", "Nonce", "Hash"}}
	for i, block := range chain.Blocks {
		data = append(data, []string{
			strconv.Itoa(i),
			strconv.Itoa(len(block.Transactions)),
			strconv.FormatInt(block.Nonce, 10),
			block.Hash,
		})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func logCounters(logger *logrus.Logger) {
	counters, err := custompromauto.Counters()
	if err != nil {
		logger.WithError(err).Error("Failed to gather metrics")
		return
	}
	for name, value := range counters {
		logger.WithField("value", value).Debug(name)
	}
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.ChainPath == "" {
		logger.Error("--chain is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.Workers < 1 {
		logger.Error("--workers is too small, it cannot be less than 1")
		flag.Usage()
		os.Exit(1)
	}
}
