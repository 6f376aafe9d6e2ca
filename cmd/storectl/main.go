// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/game-store/internal/cli"
	"github.com/MKhiriev/game-store/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cli.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
