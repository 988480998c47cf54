package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eyesofbug/VoyageIQ/internal/cloudwriter"
	"github.com/eyesofbug/VoyageIQ/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// PlanSlotRow is the flattened parquet record, one row per activity slot.
type PlanSlotRow struct {
	PlanID    string  `parquet:"name=plan_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Day       int32   `parquet:"name=day, type=INT32"`
	Area      string  `parquet:"name=area, type=BYTE_ARRAY, convertedtype=UTF8"`
	Time      string  `parquet:"name=time, type=BYTE_ARRAY, convertedtype=UTF8"`
	Activity  string  `parquet:"name=activity, type=BYTE_ARRAY, convertedtype=UTF8"`
	Cost      float64 `parquet:"name=cost, type=DOUBLE"`
	Duration  float64 `parquet:"name=duration, type=DOUBLE"`
	Lat       float64 `parquet:"name=lat, type=DOUBLE"`
	Lon       float64 `parquet:"name=lon, type=DOUBLE"`
	IsMeal    bool    `parquet:"name=is_meal, type=BOOLEAN"`
	Optimized bool    `parquet:"name=optimized, type=BOOLEAN"`
	Overall   int32   `parquet:"name=overall_score, type=INT32"`
}

type ParquetOutput struct {
	basePath           string
	folder             string
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetOutput(cfg *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: cfg.OutputPath,
		folder:   cfg.OutputFolder,
	}

	if cfg.OutputDestination != "local" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch cfg.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}

		p.cloudWriterFactory = factory
		p.cloudBucketName = cfg.CloudStorage.BucketName
	}

	return p, nil
}

func (p *ParquetOutput) WritePlan(plan *models.TripPlan) error {
	name := fmt.Sprintf("plan_%s.parquet", plan.ID)

	var pf source.ParquetFile
	var err error
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, name)
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return fmt.Errorf("failed to create cloud writer: %w", err)
		}
		pf = NewCloudParquetFile(cw)
	} else {
		dir := filepath.Join(p.basePath, p.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		pf, err = local.NewLocalFileWriter(filepath.Join(dir, name))
		if err != nil {
			return err
		}
	}

	pw, err := writer.NewParquetWriter(pf, new(PlanSlotRow), 2)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for _, day := range plan.Itinerary {
		for _, slot := range day.Activities {
			row := PlanSlotRow{
				PlanID:    plan.ID,
				Day:       int32(day.Day),
				Area:      day.Area,
				Time:      slot.Time,
				Activity:  slot.Activity,
				Cost:      slot.Cost,
				Duration:  slot.Duration,
				Lat:       slot.Lat,
				Lon:       slot.Lon,
				IsMeal:    slot.IsMeal,
				Optimized: slot.Optimized,
				Overall:   int32(plan.Scores.Overall),
			}
			if err := pw.Write(row); err != nil {
				return fmt.Errorf("failed to write parquet row: %w", err)
			}
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return pf.Close()
}

func (p *ParquetOutput) Close() error {
	return nil
}

// CloudParquetFile adapts a CloudWriter to the parquet source interface.
// Cloud objects are write-once, so reads and end-relative seeks are not
// supported.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cw cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cw}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
