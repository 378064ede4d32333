package main

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/zombor/invoice/internal/invoice"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

// Used when no --item / --comment flags are given
var (
	defaultItems = []string{
		"34 floor building:3400:0.1",
		"Equipment Rental:1000:0.1",
		"Fear Tax:340:0.0",
	}
	defaultComments = []string{
		"Charge for building construction.",
		"Additional equipment rental.",
		"Fear tax included as per local regulations.",
	}
)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("Failed to build invoice", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := ff.NewFlagSet("invoice")
	var (
		senderName       = fs.StringLong("sender-name", "Larry Jinkles", "Sender name")
		senderAddress    = fs.StringLong("sender-address", "34 Windsor Ln.", "Sender address")
		senderEmail      = fs.StringLong("sender-email", "lejank@billing.com", "Sender email")
		recipientName    = fs.StringLong("recipient-name", "Tod Hooper", "Recipient name")
		recipientAddress = fs.StringLong("recipient-address", "14 Manslow road", "Recipient address")
		recipientEmail   = fs.StringLong("recipient-email", "discreetclorinator@hotmail.com", "Recipient email")
		items            = fs.StringListLong("item", "Line item as name:price:tax, repeatable (tax is a fraction, e.g. 0.1)")
		comments         = fs.StringListLong("comment", "Invoice comment, repeatable")
		discountFlag     = fs.StringLong("discount", "20", "Discount percentage applied to every item before tax")
		showVersion      = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("INVOICE"),
	); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *showVersion {
		fmt.Fprintln(stdout, version)
		return nil
	}

	discount, err := invoice.ParseDiscount(*discountFlag)
	if err != nil {
		return err
	}

	itemSpecs := *items
	if len(itemSpecs) == 0 {
		itemSpecs = defaultItems
	}
	commentList := *comments
	if len(commentList) == 0 {
		commentList = defaultComments
	}

	inv := invoice.New(
		invoice.Party{Name: *senderName, Address: *senderAddress, Email: *senderEmail},
		invoice.Party{Name: *recipientName, Address: *recipientAddress, Email: *recipientEmail},
	)
	slog.Info("Created invoice", "id", inv.ID(), "sender", *senderName, "recipient", *recipientName)

	for _, spec := range itemSpecs {
		name, price, tax, err := invoice.ParseItem(spec)
		if err != nil {
			return fmt.Errorf("adding item: %w", err)
		}
		inv.AddItem(name, price, tax)
	}

	total := inv.CalculateTotal(discount)
	slog.Info("Calculated total", "id", inv.ID(), "items", len(itemSpecs), "discount", discount.String(), "total", total.String())

	for _, comment := range commentList {
		inv.AddComment(comment)
	}

	return inv.WriteReport(stdout)
}
