// Package coursepdf renders algorithms-course material to PDF using headless Chrome.
//
// Two document kinds are supported:
//
//   - KindCode: a C++ sample file (lecture-NN-samples.cpp) highlighted by chroma
//     under a "Lecture NN: Title" header.
//   - KindLecture: Markdown lecture notes (Lecture-NN.md) converted by goldmark.
//
// # Quick Start
//
//	conv, err := coursepdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	src, _ := os.ReadFile("code/lecture-05-samples.cpp")
//	result, err := conv.Convert(ctx, coursepdf.Input{
//	    Kind:    coursepdf.KindCode,
//	    Path:    "code/lecture-05-samples.cpp",
//	    Content: string(src),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("code/lecture-05-samples.pdf", result.PDF, 0644)
//
// # Metadata
//
// The lecture number comes from the file name: the token after the first "-",
// cut at the first ".". Names without a "-" get the number "00". Titles come
// from the built-in course Catalog; unknown numbers get a per-kind fallback
// title. WithTitles adds or replaces entries.
//
// # Conversion Pipeline
//
//  1. Content transform: chroma highlighting (code) or front matter, goldmark,
//     [TOC] expansion and relative path rewriting (lectures)
//  2. Assembly into the kind's page template with its stylesheet
//  3. PDF rendering via headless Chrome (go-rod), using the stylesheet's @page
//     rules and a "Page N" footer
//
// # Parallel Processing
//
// ConverterPool hands out Converters, one browser each:
//
//	pool := coursepdf.NewConverterPool(4)
//	defer pool.Close()
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. go-rod downloads a managed Chromium
// on first run when none is configured. Set ROD_BROWSER_BIN to use a specific
// binary and ROD_NO_SANDBOX=1 inside containers.
package coursepdf
