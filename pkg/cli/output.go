// Package cli provides terminal output helpers for the agentrouter command.
package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	dimColor     = color.New(color.Faint)
)

// Header prints a section header in bold cyan.
func Header(msg string) {
	headerColor.Println(msg)
}

// Success prints a success message in green.
func Success(msg string) {
	successColor.Println(msg)
}

// Warning prints a warning message in yellow to stderr.
func Warning(msg string) {
	warningColor.Fprintln(os.Stderr, msg)
}

// Dim prints de-emphasized text.
func Dim(msg string) {
	dimColor.Println(msg)
}

// PrintTable prints rows in a borderless table format.
func PrintTable(headers []string, rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
