package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mbax/huffcode/internal/huffgen"
)

// readTableFile reads a plain-text code table and returns one CodePoint
// per line. Each line has three whitespace-separated fields:
//
//	<symbol> <pattern> <bits>
//
// symbol and pattern accept any base strconv.ParseUint(..., 0, ...)
// recognizes (0x hex, 0b binary, 0 octal, or plain decimal); bits is
// decimal. Blank lines and lines starting with # are skipped.
//
// Adapted from a line-oriented bufio.Scanner reader (parser.go, see
// DESIGN.md) that only printed each line; this one builds the table the
// generator actually needs.
func readTableFile(filename string) ([]huffgen.CodePoint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var points []huffgen.CodePoint
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 fields, got %d", filename, lineNo, len(fields))
		}
		symbol, err := strconv.ParseUint(fields[0], 0, 8)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: symbol: %w", filename, lineNo, err)
		}
		pattern, err := strconv.ParseUint(fields[1], 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: pattern: %w", filename, lineNo, err)
		}
		bits, err := strconv.ParseUint(fields[2], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bits: %w", filename, lineNo, err)
		}
		points = append(points, huffgen.CodePoint{
			Symbol:  byte(symbol),
			Pattern: uint32(pattern),
			NumBits: uint8(bits),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
