//go:build !linux

package stream

import (
	"os"
	"time"
)

func accessTime(fi os.FileInfo) time.Time { return time.Time{} }

func changeTime(fi os.FileInfo) time.Time { return time.Time{} }
