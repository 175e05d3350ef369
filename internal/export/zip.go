package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// packageManifest is the fixed artifact order of the delivery archive.
// Entries missing from the job directory are skipped.
var packageManifest = []string{
	"board.kicad_pcb",
	"board.kicad_sch",
	"board.kicad_pro",
	"placement.json",
	"netlist.json",
	"preview.svg",
	"bom.csv",
	"bom.xlsx",
	"pnp.csv",
	"report.pdf",
	"labels.pdf",
	"outline.dxf",
	"drc_report.json",
	"DRC_FAILED.txt",
	"validation_warnings.txt",
}

// PackageZip bundles a job's deliverable files into one archive. Known
// artifacts are included when present, followed by any fabrication files
// under gerbers/ in name order. Returns the number of files packed.
func PackageZip(zipPath string, jobDir string) (int, error) {
	type entry struct {
		src     string
		arcname string
	}
	var files []entry

	for _, name := range packageManifest {
		p := filepath.Join(jobDir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			files = append(files, entry{src: p, arcname: name})
		}
	}

	// os.ReadDir sorts by filename
	if gerbers, err := os.ReadDir(filepath.Join(jobDir, "gerbers")); err == nil {
		for _, g := range gerbers {
			if g.Type().IsRegular() {
				files = append(files, entry{
					src:     filepath.Join(jobDir, "gerbers", g.Name()),
					arcname: "gerbers/" + g.Name(),
				})
			}
		}
	}

	out, err := os.Create(zipPath)
	if err != nil {
		return 0, fmt.Errorf("cannot create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, f := range files {
		if err := addToZip(zw, f.src, f.arcname); err != nil {
			zw.Close()
			return 0, fmt.Errorf("cannot pack %s: %w", f.arcname, err)
		}
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}

	return len(files), out.Close()
}

// addToZip streams one file into the archive under the given name.
func addToZip(zw *zip.Writer, src, arcname string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	w, err := zw.Create(arcname)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
