package models

// Справочники маршрута Китай -> Алжир. Используются валидацией
// объявлений и отдаются фронту через /meta/reference.

var ChineseCities = []string{
	"Guangzhou",
	"Shenzhen",
	"Shanghai",
	"Yiwu",
	"Beijing",
	"Ningbo",
	"Qingdao",
	"Tianjin",
	"Xiamen",
	"Dalian",
}

var AlgerianCities = []string{
	"Alger",
	"Oran",
	"Constantine",
	"Annaba",
	"Blida",
	"Batna",
	"Djelfa",
	"Sétif",
	"Sidi Bel Abbès",
	"Biskra",
}

var ChinesePorts = []string{
	"Port of Shanghai",
	"Port of Shenzhen",
	"Port of Ningbo-Zhoushan",
	"Port of Guangzhou",
	"Port of Qingdao",
	"Port of Tianjin",
	"Port of Xiamen",
	"Port of Dalian",
}

var AlgerianPorts = []string{
	"Port of Algiers",
	"Port of Oran",
	"Port of Annaba",
	"Port of Skikda",
	"Port of Bejaia",
	"Port of Mostaganem",
	"Port of Djendjene",
}

var CarTypes = []string{
	"Sedan",
	"SUV",
	"Truck",
	"Van",
	"Pickup",
	"Minibus",
	"Any type",
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func IsChineseCity(city string) bool { return contains(ChineseCities, city) }

func IsAlgerianCity(city string) bool { return contains(AlgerianCities, city) }

func IsChinesePort(port string) bool { return contains(ChinesePorts, port) }

func IsAlgerianPort(port string) bool { return contains(AlgerianPorts, port) }

func IsValidCarType(carType string) bool { return contains(CarTypes, carType) }
