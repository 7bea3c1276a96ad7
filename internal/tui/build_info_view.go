// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/beyond-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Название приложения: beyond-client\n")
	b.WriteString("Версия: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(info.BuildCommit())

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", boxStyle.Render(b.String()), "esc: назад")
}
