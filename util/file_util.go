package util

import (
	"os"
	"path/filepath"
)

// FileExists 检查文件是否存在
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// DirExists 检查目录是否存在
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	return err == nil && info.IsDir()
}

// EnsureDir 确保目录存在，如果不存在则创建
func EnsureDir(dirname string) error {
	if DirExists(dirname) {
		return nil
	}
	return os.MkdirAll(dirname, 0755)
}

// WriteFile 写入文件，如果目录不存在则创建
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := EnsureDir(dir); err != nil {
		return err
	}
	return os.WriteFile(filename, data, perm)
}

// PurgeDir 删除目录下的所有子项，保留目录本身
func PurgeDir(dirname string) error {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dirname, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// SweepDirs 删除parent下所有以prefix开头的目录及其内容
// 用于清理上一个实例崩溃后遗留的临时目录
func SweepDirs(parent, prefix string) error {
	matches, err := filepath.Glob(filepath.Join(parent, prefix+"*"))
	if err != nil {
		return err
	}
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := os.RemoveAll(match); err != nil {
			return err
		}
	}
	return nil
}
