// Package main содержит консольный клиент сервиса обработки чеков.
//
//	receiptctl [-a addr] process <receipt.json>
//	receiptctl [-a addr] points <id>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/receipt-processor/internal/client"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	sugar := logger.Sugar()

	addr := flag.String("a", "localhost:8080", "receipt processor address")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: receiptctl [-a addr] process <receipt.json> | points <id>")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := client.NewClient(*addr)

	switch args[0] {
	case "process":
		body, err := os.ReadFile(args[1])
		if err != nil {
			sugar.Fatalw("read receipt", "file", args[1], "error", err)
		}
		id, err := c.ProcessReceipt(ctx, body)
		if err != nil {
			sugar.Fatalw("process receipt", "file", args[1], "error", err)
		}
		fmt.Println(id)
	case "points":
		points, err := c.GetPoints(ctx, args[1])
		if err != nil {
			sugar.Fatalw("get points", "id", args[1], "error", err)
		}
		fmt.Println(points)
	default:
		sugar.Fatalw("unknown command", "command", args[0])
	}
}
