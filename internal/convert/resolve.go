package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolvedOutput is the write target for one discovered file. A zero
// TargetPath with Stdout set means the serialized graph goes to standard
// output and the filesystem is never touched.
type ResolvedOutput struct {
	Stdout     bool
	TargetPath string
	TargetDir  string
}

// ResolveOutput computes the output location for file. With an empty
// outputDir the result is the stdout sentinel. Otherwise the target directory
// either is outputDir itself (flatten) or mirrors the file's position
// relative to its origin root below outputDir, and the target filename is the
// input basename with its extension swapped for outputExt.
//
// A target path equal to the input path would destroy the input; that case
// fails with ErrSelfOverwrite before anything is written or prompted.
func ResolveOutput(file DiscoveredFile, outputDir string, flatten bool, outputExt string) (ResolvedOutput, error) {
	if outputDir == "" {
		return ResolvedOutput{Stdout: true}, nil
	}

	outAbs, err := filepath.Abs(outputDir)
	if err != nil {
		return ResolvedOutput{}, fmt.Errorf("resolve output dir %q: %w", outputDir, err)
	}

	head := filepath.Dir(file.AbsolutePath)

	targetDir := outAbs
	if !flatten {
		// Strip the origin root from the file's directory, otherwise the
		// root's own path segments would reappear below the output dir.
		prefix := commonPathPrefix(head, file.OriginRoot)
		residual := strings.TrimPrefix(strings.TrimPrefix(head, prefix), string(filepath.Separator))
		targetDir = filepath.Join(outAbs, residual)
	}

	base := filepath.Base(file.AbsolutePath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + outputExt
	targetPath := filepath.Join(targetDir, name)

	if targetPath == file.AbsolutePath {
		return ResolvedOutput{}, fmt.Errorf("%w: %q", ErrSelfOverwrite, targetPath)
	}

	return ResolvedOutput{TargetPath: targetPath, TargetDir: targetDir}, nil
}

// commonPathPrefix returns the longest leading run of whole path segments
// shared by a and b. Unlike a plain string prefix, "/data/docs" and
// "/data/docs2" share only "/data".
func commonPathPrefix(a, b string) string {
	sep := string(filepath.Separator)
	as := strings.Split(filepath.Clean(a), sep)
	bs := strings.Split(filepath.Clean(b), sep)

	var shared []string
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			break
		}
		shared = append(shared, as[i])
	}
	if len(shared) == 1 && shared[0] == "" {
		// Only the leading "/" matched.
		return sep
	}
	return strings.Join(shared, sep)
}
