package analytics

import (
	"fmt"

	"github.com/skylark-hq/skylark/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

// OrderRecord is the flattened shape handed to BI tooling.
type OrderRecord struct {
	ID            string `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerName  string `parquet:"name=customer_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	ServiceType   string `parquet:"name=service_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status        string `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalAmount   int64  `parquet:"name=total_amount, type=INT64"`
	EstimatedTime int32  `parquet:"name=estimated_time, type=INT32"`
	ItemCount     int32  `parquet:"name=item_count, type=INT32"`
	PlacedAtMs    int64  `parquet:"name=placed_at_ms, type=INT64"`
}

// WriteOrdersParquet writes the order list as a parquet file at path.
func WriteOrdersParquet(path string, orders []models.Order) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(OrderRecord), 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for _, order := range orders {
		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}
		record := OrderRecord{
			ID:            order.ID,
			CustomerName:  order.CustomerName,
			ServiceType:   string(order.CustomerInfo.ServiceType),
			Status:        string(order.Status),
			TotalAmount:   int64(order.TotalAmount),
			EstimatedTime: int32(order.EstimatedTime),
			ItemCount:     int32(itemCount),
			PlacedAtMs:    order.Timestamp.UnixMilli(),
		}
		if err := pw.Write(record); err != nil {
			return fmt.Errorf("failed to write order record: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
