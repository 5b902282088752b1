package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func init() {
	// IDE 里直接运行时使用示例文件
	if strings.HasPrefix(filepath.Base(os.Args[0]), "___go_build_") && len(os.Args) < 2 {
		os.Args = append(os.Args, "describe", "cmd/testdata/sample.svg")
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
