// Copyright (C) 2018 go-gt authors
//
// This file is part of the go-gt library.
//
// the go-gt library is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// the go-gt library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with the go-gt library.  If not, see <http://www.gnu.org/licenses/>.
//
package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const logFileName = "ucoin.log"

// NewFileRotateHooker returns a hook writing every level to path/ucoin.log,
// rotated each rotationTime seconds and kept for age seconds (0 keeps the
// library default of a week).
func NewFileRotateHooker(path string, rotationTime int64, age uint32) logrus.Hook {
	if len(path) == 0 {
		panic("Failed to parse logger folder:" + path + ".")
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	filePath := filepath.Join(path, logFileName)

	options := []rotatelogs.Option{
		rotatelogs.WithLinkName(filePath),
		rotatelogs.WithRotationTime(time.Duration(rotationTime) * time.Second),
	}
	if age > 0 {
		options = append(options, rotatelogs.WithMaxAge(time.Duration(age)*time.Second))
	}
	writer, err := rotatelogs.New(filePath+".%Y%m%d%H%M", options...)
	if err != nil {
		panic("Failed to create rotate logs: " + err.Error())
	}

	return lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
}

type functionHooker struct{}

// LoadFunctionHooker adds the calling function and line to every entry.
func LoadFunctionHooker(logger *logrus.Logger) {
	logger.Hooks.Add(&functionHooker{})
}

func (h *functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	pc := make([]uintptr, 16)
	n := runtime.Callers(4, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "sirupsen/logrus") {
			entry.Data["func"] = filepath.Base(frame.Function)
			entry.Data["line"] = fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
			return nil
		}
		if !more {
			return nil
		}
	}
}
