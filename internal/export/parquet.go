package export

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// WriteParquet writes the report through an already-open parquet source.
// The source is closed on success.
func WriteParquet(f source.ParquetFile, rows []Row) error {
	pw, err := writer.NewParquetWriter(f, new(Row), 2)
	if err != nil {
		return fmt.Errorf("create parquet writer: %w", err)
	}
	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("write parquet row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finalize parquet file: %w", err)
	}
	return f.Close()
}

// WriteParquetFile writes the report to a local parquet file.
func WriteParquetFile(path string, rows []Row) error {
	f, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}
	return WriteParquet(f, rows)
}

// cloudParquetFile adapts a buffered uploader to the parquet source
// interface. Objects are write-only: reading and seeking are not supported,
// the upload happens on Close.
type cloudParquetFile struct {
	uploader *S3Uploader
}

func NewCloudParquetFile(uploader *S3Uploader) source.ParquetFile {
	return &cloudParquetFile{uploader: uploader}
}

func (c *cloudParquetFile) Write(p []byte) (int, error) { return c.uploader.Write(p) }
func (c *cloudParquetFile) Close() error                { return c.uploader.Close() }

// Open and Create return the instance itself: the object is implicitly
// created when writing starts.
func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *cloudParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("cloud parquet objects are write-only")
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	return 0, fmt.Errorf("cloud parquet objects are write-only")
}
