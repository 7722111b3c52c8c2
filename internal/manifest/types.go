// ADK - Any Distribution Kit
// Copyright (C) 2026 The ADK Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Пакет manifest содержит модель репозитория дистрибутива:
// описания версий пакетов, способы их сборки и декларации релизов.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BuildMethod определяет способ установки версии пакета.
type BuildMethod uint8

const (
	// MethodCmake собирает пакет из исходников через cmake/make
	MethodCmake BuildMethod = iota
	// MethodPip устанавливает пакет менеджером пакетов интерпретатора
	MethodPip
	// MethodRPM распаковывает платформенный rpm-архив
	MethodRPM
	// MethodDownload загружает один файл с проверкой контрольной суммы
	MethodDownload
	// MethodRsync копирует каталог с готовой файловой структурой
	MethodRsync
	// MethodNoop ничего не делает; используется для виртуальных пакетов
	MethodNoop
)

func (m BuildMethod) String() string {
	switch m {
	case MethodCmake:
		return "cmake"
	case MethodPip:
		return "pip"
	case MethodRPM:
		return "rpm"
	case MethodDownload:
		return "download"
	case MethodRsync:
		return "rsync"
	case MethodNoop:
		return "noop"
	}
	return "<unknown>"
}

func ParseBuildMethod(s string) (BuildMethod, error) {
	switch s {
	case "cmake":
		return MethodCmake, nil
	case "pip":
		return MethodPip, nil
	case "rpm":
		return MethodRPM, nil
	case "download":
		return MethodDownload, nil
	case "rsync":
		return MethodRsync, nil
	case "noop":
		return MethodNoop, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBuildMethod, s)
}

func (m *BuildMethod) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseBuildMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// PackageVersion описывает одну версию пакета в репозитории.
// Поля URL, Hash и Destination допустимы только для метода download,
// PypiName — только для pip; согласованность проверяет Validate.
type PackageVersion struct {
	Make       BuildMethod `yaml:"make"`
	Maintainer string      `yaml:"maintainer"`
	Depends    []string    `yaml:"depends"`
	MakeOpts   string      `yaml:"makeopts"`

	URL         string `yaml:"url"`
	Hash        string `yaml:"hash"`
	Destination string `yaml:"destination"`

	PypiName string `yaml:"pypi_package_name"`
}

// DownloadOptions содержит поля, обязательные для метода download.
type DownloadOptions struct {
	URL         string
	Hash        string
	Destination string
}

// DownloadOptions возвращает параметры загрузки. Вызов допустим
// только после успешного Validate.
func (p PackageVersion) DownloadOptions() DownloadOptions {
	return DownloadOptions{
		URL:         p.URL,
		Hash:        p.Hash,
		Destination: p.Destination,
	}
}

// InstallName возвращает имя, под которым пакет известен установщику
// (для pip оно может отличаться от имени в репозитории).
func (p PackageVersion) InstallName(name string) string {
	if p.PypiName != "" {
		return p.PypiName
	}
	return name
}

// Repository отображает имя пакета на его версии. После загрузки
// не изменяется.
type Repository map[string]map[string]PackageVersion

// Get возвращает метаданные указанной версии пакета.
func (r Repository) Get(name, version string) (PackageVersion, error) {
	versions, ok := r[name]
	if !ok {
		return PackageVersion{}, fmt.Errorf("%w: %s", ErrPackageNotFound, name)
	}
	pv, ok := versions[version]
	if !ok {
		return PackageVersion{}, fmt.Errorf("%w: %s %s", ErrVersionNotFound, name, version)
	}
	return pv, nil
}

// Release объявляет состав дистрибутива: по одной версии на пакет.
// Порядок объявления сохраняется, от него зависит порядок сборки.
type Release struct {
	versions map[string]string
	order    []string
}

func NewRelease() *Release {
	return &Release{versions: map[string]string{}}
}

func (r *Release) Set(name, version string) {
	if _, ok := r.versions[name]; !ok {
		r.order = append(r.order, name)
	}
	r.versions[name] = version
}

func (r *Release) Get(name string) (string, bool) {
	v, ok := r.versions[name]
	return v, ok
}

func (r *Release) Has(name string) bool {
	_, ok := r.versions[name]
	return ok
}

// Packages возвращает имена пакетов в порядке объявления.
func (r *Release) Packages() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Release) Len() int {
	return len(r.order)
}

func (r *Release) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("release: expected a mapping of package to version")
	}
	r.versions = map[string]string{}
	r.order = nil
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]

		var name, version string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("release: invalid package name at line %d: %w", keyNode.Line, err)
		}
		if err := valNode.Decode(&version); err != nil {
			return fmt.Errorf("release: invalid version for %s at line %d: %w", name, valNode.Line, err)
		}
		if _, ok := r.versions[name]; ok {
			return fmt.Errorf("release: duplicate package %s at line %d", name, keyNode.Line)
		}
		r.Set(name, version)
	}
	return nil
}
