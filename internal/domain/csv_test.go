package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "Country,City,AQI Value,AQI Category,CO AQI Value,CO AQI Category,Ozone AQI Value,Ozone AQI Category,NO2 AQI Value,NO2 AQI Category,PM2.5 AQI Value,PM2.5 AQI Category"

func TestParseRecords(t *testing.T) {
	t.Run("well-formed rows", func(t *testing.T) {
		text := testHeader + "\n" +
			"India,Delhi,167,Unhealthy,3,Good,39,Good,25,Good,167,Unhealthy\n" +
			"Finland,Helsinki,17,Good,1,Good,17,Good,4,Good,12,Good\n"

		records, skipped := ParseRecords(text)

		require.Len(t, records, 2)
		assert.Zero(t, skipped)

		assert.Equal(t, "India", records[0].Country)
		assert.Equal(t, "Delhi", records[0].City)
		assert.Equal(t, 167, records[0].AQI)
		assert.Equal(t, "Unhealthy", records[0].Category)
		assert.Equal(t, SubIndex{Value: 3, Category: "Good"}, records[0].CO)
		assert.Equal(t, SubIndex{Value: 39, Category: "Good"}, records[0].Ozone)
		assert.Equal(t, SubIndex{Value: 25, Category: "Good"}, records[0].NO2)
		assert.Equal(t, SubIndex{Value: 167, Category: "Unhealthy"}, records[0].PM25)

		assert.Equal(t, "Helsinki", records[1].City)
		assert.Equal(t, 17, records[1].AQI)
	})

	t.Run("field count mismatch drops row without shifting later rows", func(t *testing.T) {
		text := testHeader + "\n" +
			"India,Delhi,167,Unhealthy,3,Good,39,Good,25,Good,167,Unhealthy\n" +
			"Broken,Row,12,Good\n" +
			"Too,Many,1,Good,1,Good,1,Good,1,Good,1,Good,extra,extra\n" +
			"Finland,Helsinki,17,Good,1,Good,17,Good,4,Good,12,Good\n"

		records, skipped := ParseRecords(text)

		require.Len(t, records, 2)
		assert.Equal(t, 2, skipped)
		assert.Equal(t, "Delhi", records[0].City)
		assert.Equal(t, "Helsinki", records[1].City)
	})

	t.Run("non-numeric value yields Missing sentinel", func(t *testing.T) {
		text := testHeader + "\n" +
			"India,Delhi,NA,Unhealthy,3,Good,39,Good,25,Good,oops,Unhealthy\n"

		records, skipped := ParseRecords(text)

		require.Len(t, records, 1)
		assert.Zero(t, skipped)
		assert.Equal(t, Missing, records[0].AQI)
		assert.Equal(t, Missing, records[0].PM25.Value)
		assert.Equal(t, 3, records[0].CO.Value)
		assert.Equal(t, "Unhealthy", records[0].Category)
	})

	t.Run("header order does not matter", func(t *testing.T) {
		text := "City,Country,AQI Category,AQI Value,CO AQI Value,CO AQI Category,Ozone AQI Value,Ozone AQI Category,NO2 AQI Value,NO2 AQI Category,PM2.5 AQI Value,PM2.5 AQI Category\n" +
			"Lima,Peru,Moderate,83,2,Good,32,Good,9,Good,83,Moderate\n"

		records, _ := ParseRecords(text)

		require.Len(t, records, 1)
		assert.Equal(t, "Peru", records[0].Country)
		assert.Equal(t, "Lima", records[0].City)
		assert.Equal(t, 83, records[0].AQI)
	})

	t.Run("empty input", func(t *testing.T) {
		records, skipped := ParseRecords("")
		assert.Empty(t, records)
		assert.Zero(t, skipped)
	})

	t.Run("header only", func(t *testing.T) {
		records, skipped := ParseRecords(testHeader + "\n")
		assert.Empty(t, records)
		assert.Zero(t, skipped)
	})

	t.Run("windows line endings and blank lines", func(t *testing.T) {
		text := testHeader + "\r\n" +
			"India,Delhi,167,Unhealthy,3,Good,39,Good,25,Good,167,Unhealthy\r\n" +
			"\r\n"

		records, skipped := ParseRecords(text)

		require.Len(t, records, 1)
		assert.Zero(t, skipped)
		assert.Equal(t, "Unhealthy", records[0].PM25.Category)
	})

	t.Run("input order preserved", func(t *testing.T) {
		text := testHeader + "\n" +
			"C,z,1,Good,1,Good,1,Good,1,Good,1,Good\n" +
			"A,m,2,Good,1,Good,1,Good,1,Good,1,Good\n" +
			"B,a,3,Good,1,Good,1,Good,1,Good,1,Good\n"

		records, _ := ParseRecords(text)

		require.Len(t, records, 3)
		assert.Equal(t, []string{"z", "m", "a"}, []string{records[0].City, records[1].City, records[2].City})
	})
}
