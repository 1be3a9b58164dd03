package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadDensityProfile reads a two-column (position, density) whitespace-delimited
// text file. There is no header; blank lines are skipped.
func LoadDensityProfile(path string) (*DensityProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer file.Close()

	profile := &DensityProfile{}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: expected 2 columns, found %d", path, lineNo, len(fields))
		}
		pos, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad position %q: %w", path, lineNo, fields[0], err)
		}
		dens, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad density %q: %w", path, lineNo, fields[1], err)
		}
		profile.Positions = append(profile.Positions, pos)
		profile.Densities = append(profile.Densities, dens)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if profile.Len() == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	return profile, nil
}

// LoadPVData reads a three-column (volume, solid pressure, liquid pressure)
// whitespace-delimited text file. Lines beginning with '#' are comments.
func LoadPVData(path string) (*PVData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer file.Close()

	data := &PVData{}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 columns, found %d", path, lineNo, len(fields))
		}
		row := make([]float64, 3)
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad value %q: %w", path, lineNo, fields[i], err)
			}
			row[i] = v
		}
		data.Volumes = append(data.Volumes, row[0])
		data.SolidPressure = append(data.SolidPressure, row[1])
		data.LiquidPressure = append(data.LiquidPressure, row[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if data.Len() == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	return data, nil
}
