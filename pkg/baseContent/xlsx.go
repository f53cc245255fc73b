package baseContent

import (
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

const sheetName = "BaseContent"

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			&value,
		),
	)
}

// SaveXlsx writes the percentage table as xlsx.
func (bc *BaseContent) SaveXlsx(path string) {
	var xlsx = excelize.NewFile()
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", sheetName))

	var title = []interface{}{"Position"}
	for j := 0; j < len(Bases); j++ {
		title = append(title, string(Bases[j]))
	}
	SetRow(xlsx, sheetName, 1, 1, title)

	for i, freq := range bc.Freq {
		var row = []interface{}{bc.position(i)}
		for _, v := range freq {
			row = append(row, v)
		}
		SetRow(xlsx, sheetName, 1, i+2, row)
	}
	simpleUtil.CheckErr(xlsx.SaveAs(path))
}
