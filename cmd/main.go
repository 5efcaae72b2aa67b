// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/daithiocrualaoich/ksforge/cmd/app"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	command := app.NewCommand()
	if err := command.ExecuteContext(ctx); err != nil {
		klog.Errorf("%v", err)
		os.Exit(1)
	}
}
