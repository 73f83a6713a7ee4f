package main

import (
	"fmt"
	"io"
	"os"

	"wildnav/internal/errors"
	"wildnav/internal/util"

	"github.com/protomaps/go-pmtiles/pmtiles"
)

func runInspect(out io.Writer, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "stat archive")
	}

	header, err := readHeader(path)
	if err != nil {
		return err
	}

	checksum, err := util.FileChecksum(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Archive:   %s (%s)\n", path, util.FormatBytes(info.Size()))
	fmt.Fprintf(out, "SHA256:    %s\n", checksum)
	fmt.Fprintf(out, "Version:   %d\n", header.SpecVersion)
	fmt.Fprintf(out, "Zoom:      %d-%d\n", header.MinZoom, header.MaxZoom)
	fmt.Fprintf(out, "Bounds:    %.5f,%.5f,%.5f,%.5f\n",
		e7(header.MinLonE7), e7(header.MinLatE7), e7(header.MaxLonE7), e7(header.MaxLatE7))
	fmt.Fprintf(out, "Tiles:     %d addressed, %d unique\n", header.AddressedTilesCount, header.TileContentsCount)

	return nil
}

func readHeader(path string) (pmtiles.HeaderV3, error) {
	file, err := os.Open(path)
	if err != nil {
		return pmtiles.HeaderV3{}, errors.Wrap(err, "open archive")
	}
	defer file.Close()

	buf := make([]byte, pmtiles.HeaderV3LenBytes)
	if _, err := io.ReadFull(file, buf); err != nil {
		return pmtiles.HeaderV3{}, errors.Wrap(err, "read header")
	}

	header, err := pmtiles.DeserializeHeader(buf)
	if err != nil {
		return pmtiles.HeaderV3{}, errors.Wrap(err, "decode header")
	}

	return header, nil
}

func e7(v int32) float64 {
	return float64(v) / 1e7
}
