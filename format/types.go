package format

type (
	// AttributeType identifies the declared type of an attribute.
	AttributeType uint8

	// CompressionType identifies the stream compression of an ARFF container.
	CompressionType uint8
)

const (
	TypeNumeric    AttributeType = 0x1 // TypeNumeric represents a floating-point attribute.
	TypeString     AttributeType = 0x2 // TypeString represents a free-text attribute.
	TypeNominal    AttributeType = 0x3 // TypeNominal represents an enumerated attribute.
	TypeDate       AttributeType = 0x4 // TypeDate represents a timestamp attribute.
	TypeRelational AttributeType = 0x5 // TypeRelational represents a nested-table attribute.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 compression.
)

func (t AttributeType) String() string {
	switch t {
	case TypeNumeric:
		return "Numeric"
	case TypeString:
		return "String"
	case TypeNominal:
		return "Nominal"
	case TypeDate:
		return "Date"
	case TypeRelational:
		return "Relational"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
