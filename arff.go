// Package arff reads and writes the ARFF (Attribute-Relation File Format)
// text format for tabular datasets with typed columns.
//
// The format declares a relation name and an ordered attribute list, then
// carries one instance per line. Supported attribute types are numeric,
// string, nominal (enumerated), date, and relational (nested tables whose
// values are themselves encoded sub-documents). Instances may be dense or
// sparse (index-value pairs), and each top-level instance may carry an
// optional weight.
//
// # Reading
//
//	r, err := arff.Open("iris.arff.gz")
//	if err != nil { ... }
//	defer r.Close()
//
//	header, err := r.ReadHeader()
//	if err != nil { ... }
//
//	for {
//	    inst, err := r.ReadInstance()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil { ... }
//	    _ = inst.Row // one format.Value per attribute
//	}
//
// # Writing
//
//	w, err := arff.Create("iris.arff")
//	if err != nil { ... }
//	defer w.Close()
//
//	_ = w.WriteRelation("iris")
//	_ = w.WriteAttribute(format.NumericAttribute("sepallength"))
//	_ = w.WriteAttribute(format.NominalAttribute("class", "a", "b"))
//	_ = w.WriteInstance(format.Instance{Row: format.Row{format.Num(5.1), format.Nominal(0)}})
//	_ = w.Flush()
//
// The writer enforces the section order of the format: the relation name
// first, then at least one attribute, then instances. Comments may be
// written at any point.
//
// # Compressed containers and text encodings
//
// Open and Create infer stream compression from the file extension
// (.gz/.gzip, .zst/.zstd, .s2, .lz4); WithCompression forces a codec for
// arbitrary streams. The default text encoding is UTF-8 without a byte-order
// mark; WithTextEncoding selects another charset (golang.org/x/text).
//
// # Package Structure
//
// This package provides the user-facing Reader and Writer. The grammar
// lives underneath: package scanner tokenizes the character stream, package
// codec implements the header and instance grammar on top of the tokens,
// and package format holds the data model. Package compress supplies the
// container codecs.
//
// Reader and Writer instances are not safe for concurrent use.
package arff
