package catalog

func ptr[T any](v T) *T { return &v }

var builtin = New(builtinDefs())

// BuiltIn returns the compiled-in component database.
func BuiltIn() *Catalog { return builtin }

// builtinDefs lists the stock parts. Prices are the 1/10/100 unit breaks
// in USD; dimensions are body outlines in mm.
func builtinDefs() []Definition {
	return []Definition{
		// MCUs
		{
			ID: "esp32_wroom_32", DisplayName: "ESP32-WROOM-32E", Category: "mcu", Subcategory: "wifi_ble",
			MPN: "ESP32-WROOM-32E", Manufacturer: "Espressif Systems", Package: "SMD-38",
			DimensionsMM:  &Dimensions{Width: 18.0, Height: 25.5},
			PlacementZone: "centre", PlacementPriority: ptr(1),
			KiCadSymbol: "RF_Module:ESP32-WROOM-32E", KiCadFootprint: "RF_Module:ESP32-WROOM-32E",
			Interfaces: []string{"I2C", "SPI", "UART"}, Capabilities: []string{"wifi", "bluetooth"},
			RequiresDecoupling: true, PowerDrawMA: 240, LogicVoltage: 3.3,
			Price1: 3.50, Price10: 3.15, Price100: 2.68, DigiKeyPN: "1965-ESP32-WROOM-32E-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"1", "15", "38"}}, {Net: "3V3", Pins: []string{"2"}}},
				Interfaces: map[string]map[string]string{
					"I2C":  {"SDA": "33", "SCL": "36"},
					"SPI":  {"MOSI": "37", "MISO": "31", "SCK": "30", "CS": "29"},
					"UART": {"TX": "35", "RX": "34"},
				},
			},
		},
		{
			ID: "rp2040", DisplayName: "RP2040", Category: "mcu", Subcategory: "arm_cortex_m0",
			MPN: "RP2040", Manufacturer: "Raspberry Pi", Package: "QFN-56",
			DimensionsMM:  &Dimensions{Width: 7.0, Height: 7.0},
			PlacementZone: "centre", PlacementPriority: ptr(1),
			KiCadSymbol: "MCU_RaspberryPi:RP2040", KiCadFootprint: "Package_DFN_QFN:QFN-56-1EP_7x7mm_P0.4mm_EP3.2x3.2mm",
			Interfaces:         []string{"I2C", "SPI", "UART", "USB"},
			RequiresDecoupling: true, PowerDrawMA: 30, LogicVoltage: 3.3,
			Price1: 1.45, Price10: 1.38, Price100: 1.20, DigiKeyPN: "2648-SC0914(13)-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"19", "57"}}, {Net: "3V3", Pins: []string{"49", "50"}}},
				Interfaces: map[string]map[string]string{
					"I2C":  {"SDA": "5", "SCL": "6"},
					"SPI":  {"MOSI": "8", "MISO": "7", "SCK": "9", "CS": "10"},
					"UART": {"TX": "2", "RX": "3"},
					"USB":  {"DP": "47", "DM": "46"},
				},
			},
		},
		{
			ID: "atmega328p_au", DisplayName: "ATmega328P", Category: "mcu", Subcategory: "avr",
			MPN: "ATMEGA328P-AU", Manufacturer: "Microchip Technology", Package: "TQFP-32",
			DimensionsMM:  &Dimensions{Width: 9.0, Height: 9.0},
			PlacementZone: "centre", PlacementPriority: ptr(1),
			KiCadSymbol: "MCU_Microchip_ATmega:ATmega328P-AU", KiCadFootprint: "Package_QFP:TQFP-32_7x7mm_P0.8mm",
			Interfaces:         []string{"I2C", "SPI", "UART"},
			RequiresDecoupling: true, PowerDrawMA: 12, LogicVoltage: 5.0,
			Price1: 2.20, Price10: 1.95, Price100: 1.68,
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"3", "5", "21"}}, {Net: "VCC_3V3", Pins: []string{"4", "6"}}},
				Interfaces: map[string]map[string]string{
					"I2C":  {"SDA": "27", "SCL": "28"},
					"SPI":  {"MOSI": "15", "MISO": "16", "SCK": "17", "CS": "14"},
					"UART": {"TX": "31", "RX": "30"},
				},
			},
		},
		{
			ID: "atsamd51j20a", DisplayName: "ATSAMD51J20A", Category: "mcu", Subcategory: "arm_cortex_m4",
			MPN: "ATSAMD51J20A-AU", Manufacturer: "Microchip Technology", Package: "TQFP-64",
			DimensionsMM:  &Dimensions{Width: 12.0, Height: 12.0},
			PlacementZone: "centre", PlacementPriority: ptr(1),
			KiCadSymbol: "MCU_Microchip_SAMD:ATSAMD51J20A-AU", KiCadFootprint: "Package_QFP:TQFP-64_10x10mm_P0.5mm",
			Interfaces:         []string{"I2C", "SPI", "UART", "USB"},
			RequiresDecoupling: true, PowerDrawMA: 65, LogicVoltage: 3.3,
			Price1: 5.56, Price10: 4.98, Price100: 4.20, DigiKeyPN: "ATSAMD51J20A-AU-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"10", "28", "54"}}, {Net: "3V3", Pins: []string{"11", "29", "55"}}},
				Interfaces: map[string]map[string]string{
					"I2C":  {"SDA": "31", "SCL": "32"},
					"SPI":  {"MOSI": "19", "MISO": "22", "SCK": "20", "CS": "21"},
					"UART": {"TX": "59", "RX": "60"},
					"USB":  {"DP": "58", "DM": "57"},
				},
			},
		},
		{
			ID: "pic24fj64ga004", DisplayName: "PIC24FJ64GA004", Category: "mcu", Subcategory: "pic24",
			MPN: "PIC24FJ64GA004-I/PT", Manufacturer: "Microchip Technology", Package: "TQFP-44",
			DimensionsMM:  &Dimensions{Width: 12.0, Height: 12.0},
			PlacementZone: "centre", PlacementPriority: ptr(1),
			KiCadSymbol: "MCU_Microchip_PIC24:PIC24FJ64GA004-IPT", KiCadFootprint: "Package_QFP:TQFP-44_10x10mm_P0.8mm",
			Interfaces:         []string{"I2C", "SPI", "UART"},
			RequiresDecoupling: true, PowerDrawMA: 20, LogicVoltage: 3.3,
			Price1: 2.84, Price10: 2.44, Price100: 2.10, DigiKeyPN: "PIC24FJ64GA004-I/PT-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"18", "39"}}, {Net: "3V3", Pins: []string{"17", "40"}}},
				Interfaces: map[string]map[string]string{
					"I2C":  {"SDA": "43", "SCL": "44"},
					"UART": {"TX": "1", "RX": "2"},
				},
			},
		},

		// Power
		{
			ID: "ams1117_33", DisplayName: "AMS1117-3.3 LDO", Category: "power", Subcategory: "ldo",
			MPN: "AMS1117-3.3", Manufacturer: "Advanced Monolithic Systems", Package: "SOT-223",
			DimensionsMM:  &Dimensions{Width: 6.5, Height: 7.0},
			PlacementZone: "power_column", PlacementPriority: ptr(4),
			KiCadSymbol: "Regulator_Linear:AMS1117-3.3", KiCadFootprint: "Package_TO_SOT_SMD:SOT-223-3_TabPin2",
			RequiredOutputCap: &OutputCapReq{Value: "10uF", Type: "ceramic", Notes: "22uF tantalum also acceptable for stability"},
			PowerDrawMA:       5,
			Price1:            0.45, Price10: 0.36, Price100: 0.28, DigiKeyPN: "LM1117IMPX-3.3/NOPB-ND",
			Pins: &PinMap{
				Power:  []PowerPin{{Net: "GND", Pins: []string{"1"}}, {Net: "VIN", Pins: []string{"3"}}},
				Output: &OutputPin{Net: "VOUT", VOUT: "2"},
			},
		},
		{
			ID: "mp2307", DisplayName: "MP2307 Buck Converter", Category: "power", Subcategory: "buck",
			MPN: "MP2307DN-LF-Z", Manufacturer: "Monolithic Power Systems", Package: "SOIC-8",
			DimensionsMM:  &Dimensions{Width: 4.9, Height: 3.9},
			PlacementZone: "power_column", PlacementPriority: ptr(4),
			KiCadSymbol: "Regulator_Switching:MP2307DN", KiCadFootprint: "Package_SO:SOIC-8-1EP_3.9x4.9mm_P1.27mm",
			RequiredOutputCap: &OutputCapReq{Value: "22uF", Type: "ceramic"},
			PowerDrawMA:       2,
			Price1:            1.22, Price10: 1.04, Price100: 0.88, DigiKeyPN: "MP2307DN-LF-Z-ND",
			Pins: &PinMap{
				Power:  []PowerPin{{Net: "GND", Pins: []string{"4"}}, {Net: "VIN", Pins: []string{"2"}}},
				Output: &OutputPin{Net: "VOUT", VOUT: "3"},
			},
		},
		{
			ID: "mt3608", DisplayName: "MT3608 Boost Converter", Category: "power", Subcategory: "boost",
			MPN: "MT3608", Manufacturer: "Aerosemi", Package: "SOT-23-6",
			DimensionsMM:  &Dimensions{Width: 2.9, Height: 1.6},
			PlacementZone: "power_column", PlacementPriority: ptr(4),
			KiCadSymbol: "Regulator_Switching:MT3608", KiCadFootprint: "Package_TO_SOT_SMD:SOT-23-6",
			RequiredOutputCap: &OutputCapReq{Value: "22uF", Type: "ceramic"},
			PowerDrawMA:       2,
			Price1:            0.88, Price10: 0.74, Price100: 0.60, DigiKeyPN: "MT3608-ND",
			Pins: &PinMap{
				Power:  []PowerPin{{Net: "GND", Pins: []string{"3"}}, {Net: "VIN", Pins: []string{"5"}}},
				Output: &OutputPin{Net: "VOUT", VOUT: "1"},
			},
		},
		{
			ID: "mcp73831", DisplayName: "MCP73831 LiPo Charger", Category: "power", Subcategory: "battery_charger",
			MPN: "MCP73831T-2ATI/OT", Manufacturer: "Microchip Technology", Package: "SOT-23-5",
			DimensionsMM:  &Dimensions{Width: 2.9, Height: 1.6},
			PlacementZone: "power_column", PlacementPriority: ptr(4),
			KiCadSymbol: "Battery_Management:MCP73831-2-OT", KiCadFootprint: "Package_TO_SOT_SMD:SOT-23-5",
			PowerDrawMA: 2,
			Price1:      0.55, Price10: 0.46, Price100: 0.38, DigiKeyPN: "MCP73831T-2ATI/OTCT-ND",
			Pins: &PinMap{
				Power:  []PowerPin{{Net: "GND", Pins: []string{"2"}}, {Net: "VUSB", Pins: []string{"4"}}},
				Output: &OutputPin{Net: "VBAT", VOUT: "3"},
			},
		},
		{
			ID: "tp4056", DisplayName: "TP4056 LiPo Charger", Category: "power", Subcategory: "battery_charger",
			MPN: "TP4056", Manufacturer: "NanJing Top Power", Package: "SOIC-8",
			DimensionsMM:  &Dimensions{Width: 4.9, Height: 3.9},
			PlacementZone: "power_column", PlacementPriority: ptr(4),
			KiCadSymbol: "Battery_Management:TP4056", KiCadFootprint: "Package_SO:SOIC-8_3.9x4.9mm_P1.27mm",
			PowerDrawMA: 5,
			Price1:      0.30, Price10: 0.24, Price100: 0.18,
			Pins: &PinMap{
				Power:  []PowerPin{{Net: "GND", Pins: []string{"3"}}, {Net: "VUSB", Pins: []string{"4"}}},
				Output: &OutputPin{Net: "VBAT", VOUT: "5"},
			},
		},
		{
			ID: "fusb302b", DisplayName: "FUSB302B USB-PD Controller", Category: "power", Subcategory: "usb_pd",
			MPN: "FUSB302BMPX", Manufacturer: "onsemi", Package: "WQFN-14",
			DimensionsMM:  &Dimensions{Width: 2.5, Height: 2.5},
			PlacementZone: "power_column", PlacementPriority: ptr(4),
			KiCadSymbol: "Interface_USB:FUSB302B", KiCadFootprint: "Package_DFN_QFN:WQFN-14-1EP_2.5x2.5mm_P0.5mm",
			Interfaces:         []string{"I2C"},
			RequiresDecoupling: true, PowerDrawMA: 1,
			Price1: 1.85, Price10: 1.62, Price100: 1.40, DigiKeyPN: "FUSB302BMPXCT-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"6"}}, {Net: "3V3", Pins: []string{"12"}}},
				Interfaces: map[string]map[string]string{
					"I2C": {"SDA": "10", "SCL": "9", "INT": "11"},
				},
			},
		},

		// Sensors
		{
			ID: "mpu6050", DisplayName: "MPU-6050 IMU", Category: "sensor", Subcategory: "imu",
			MPN: "MPU-6050", Manufacturer: "TDK InvenSense", Package: "QFN-24",
			DimensionsMM:  &Dimensions{Width: 4.0, Height: 4.0},
			PlacementZone: "centre_right", PlacementPriority: ptr(7),
			KiCadSymbol: "Sensor_Motion:MPU-6050", KiCadFootprint: "Package_DFN_QFN:QFN-24-1EP_4x4mm_P0.5mm",
			Interfaces:         []string{"I2C"},
			RequiresDecoupling: true, PowerDrawMA: 4,
			Price1: 2.54, Price10: 2.18, Price100: 1.85, DigiKeyPN: "1428-1019-1-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"18"}}, {Net: "3V3", Pins: []string{"13"}}},
				Interfaces: map[string]map[string]string{
					"I2C": {"SDA": "24", "SCL": "23", "INT": "12"},
				},
			},
		},
		{
			ID: "icm42688p", DisplayName: "ICM-42688-P IMU", Category: "sensor", Subcategory: "imu",
			MPN: "ICM-42688-P", Manufacturer: "TDK InvenSense", Package: "LGA-14",
			DimensionsMM:  &Dimensions{Width: 2.5, Height: 3.0},
			PlacementZone: "centre_right", PlacementPriority: ptr(7),
			KiCadSymbol: "Sensor_Motion:ICM-42688-P", KiCadFootprint: "Package_LGA:LGA-14_2.5x3mm_P0.5mm",
			Interfaces:         []string{"I2C", "SPI"},
			RequiresDecoupling: true, PowerDrawMA: 1,
			Price1: 3.20, Price10: 2.85, Price100: 2.40, DigiKeyPN: "1428-ICM-42688-P-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"7"}}, {Net: "3V3", Pins: []string{"8"}}},
				Interfaces: map[string]map[string]string{
					"I2C": {"SDA": "13", "SCL": "14", "INT": "4"},
				},
			},
		},
		{
			ID: "bme280", DisplayName: "BME280 Environmental Sensor", Category: "sensor", Subcategory: "environmental",
			MPN: "BME280", Manufacturer: "Bosch Sensortec", Package: "LGA-8",
			DimensionsMM:  &Dimensions{Width: 2.5, Height: 2.5},
			PlacementZone: "centre_right", PlacementPriority: ptr(7),
			KiCadSymbol: "Sensor:BME280", KiCadFootprint: "Package_LGA:Bosch_LGA-8_2.5x2.5mm_P0.65mm_ClockwisePinNumbering",
			Interfaces:  []string{"I2C"},
			PowerDrawMA: 1,
			Price1:      3.45, Price10: 3.10, Price100: 2.65, DigiKeyPN: "828-1063-1-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"1", "7"}}, {Net: "3V3", Pins: []string{"2", "8"}}},
				Interfaces: map[string]map[string]string{
					"I2C": {"SDA": "3", "SCL": "4"},
				},
			},
		},
		{
			ID: "sht31", DisplayName: "SHT31 Humidity Sensor", Category: "sensor", Subcategory: "humidity",
			MPN: "SHT31-DIS-B", Manufacturer: "Sensirion", Package: "DFN-8",
			DimensionsMM:  &Dimensions{Width: 2.5, Height: 2.5},
			PlacementZone: "centre_right", PlacementPriority: ptr(7),
			KiCadSymbol: "Sensor_Humidity:SHT3x_DIS", KiCadFootprint: "Package_DFN_QFN:DFN-8-1EP_2.5x2.5mm_P0.5mm_EP1.1x2mm",
			Interfaces:  []string{"I2C"},
			PowerDrawMA: 2,
			Price1:      2.95, Price10: 2.60, Price100: 2.20,
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"8"}}, {Net: "3V3", Pins: []string{"5"}}},
				Interfaces: map[string]map[string]string{
					"I2C": {"SDA": "1", "SCL": "4"},
				},
			},
		},
		{
			ID: "veml7700", DisplayName: "VEML7700 Ambient Light Sensor", Category: "sensor", Subcategory: "light",
			MPN: "VEML7700-TT", Manufacturer: "Vishay", Package: "SMD-6",
			DimensionsMM:  &Dimensions{Width: 6.8, Height: 2.4},
			PlacementZone: "centre_right", PlacementPriority: ptr(7),
			KiCadSymbol: "Sensor_Optical:VEML7700", KiCadFootprint: "OptoDevice:Vishay_CAST-3Pin",
			Interfaces:  []string{"I2C"},
			PowerDrawMA: 1,
			Price1:      1.62, Price10: 1.38, Price100: 1.15, DigiKeyPN: "VEML7700-TT-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"3"}}, {Net: "3V3", Pins: []string{"1"}}},
				Interfaces: map[string]map[string]string{
					"I2C": {"SDA": "4", "SCL": "6"},
				},
			},
		},
		{
			ID: "tcs34725", DisplayName: "TCS34725 Color Sensor", Category: "sensor", Subcategory: "light",
			MPN: "TCS34725FN", Manufacturer: "ams-OSRAM", Package: "DFN-6",
			DimensionsMM:  &Dimensions{Width: 2.0, Height: 2.4},
			PlacementZone: "centre_right", PlacementPriority: ptr(7),
			KiCadSymbol: "Sensor_Optical:TCS3472x", KiCadFootprint: "OptoDevice:AMS_TCS3472x",
			Interfaces:  []string{"I2C"},
			PowerDrawMA: 1,
			Price1:      2.10, Price10: 1.88, Price100: 1.55, DigiKeyPN: "TCS34725FN-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"4"}}, {Net: "3V3", Pins: []string{"6"}}},
				Interfaces: map[string]map[string]string{
					"I2C": {"SDA": "6", "SCL": "5", "INT": "1"},
				},
			},
		},

		// Comms
		{
			ID: "mdbt50q", DisplayName: "MDBT50Q BLE Module", Category: "comms", Subcategory: "ble_zigbee",
			MPN: "MDBT50Q-1MV2", Manufacturer: "Raytac", Package: "SMD-41",
			DimensionsMM:  &Dimensions{Width: 10.5, Height: 15.5},
			PlacementZone: "edge_top", PlacementPriority: ptr(2),
			KiCadSymbol: "RF_Module:MDBT50Q-1MV2", KiCadFootprint: "RF_Module:Raytac_MDBT50Q",
			Interfaces: []string{"I2C", "UART"}, Capabilities: []string{"bluetooth"},
			RequiresDecoupling: true, PowerDrawMA: 10, LogicVoltage: 3.3,
			Price1: 4.80, Price10: 4.20, Price100: 3.55, DigiKeyPN: "MDBT50Q-1MV2-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"2", "16"}}, {Net: "3V3", Pins: []string{"28"}}},
				Interfaces: map[string]map[string]string{
					"UART": {"TX": "8", "RX": "9"},
				},
			},
		},
		{
			ID: "rfm95w", DisplayName: "RFM95W LoRa Module", Category: "comms", Subcategory: "lora",
			MPN: "RFM95W-868S2", Manufacturer: "HopeRF", Package: "SMD-16",
			DimensionsMM:  &Dimensions{Width: 16.0, Height: 16.0},
			PlacementZone: "edge_top", PlacementPriority: ptr(2),
			KiCadSymbol: "RF_Module:RFM95W", KiCadFootprint: "RF_Module:HOPERF_RFM9XW_SMD",
			Interfaces: []string{"SPI"}, Capabilities: []string{"lora"},
			PowerDrawMA: 120, LogicVoltage: 3.3,
			Price1:      5.20, Price10: 4.65, Price100: 3.90, DigiKeyPN: "RFM95W-868S2-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"1", "8", "10"}}, {Net: "3V3", Pins: []string{"13"}}},
				Interfaces: map[string]map[string]string{
					"SPI": {"MOSI": "11", "MISO": "12", "SCK": "4", "CS": "5", "RST": "6", "IRQ": "14"},
				},
			},
		},
		{
			ID: "ft232rl", DisplayName: "FT232RL USB-UART Bridge", Category: "comms", Subcategory: "usb_uart",
			MPN: "FT232RL", Manufacturer: "FTDI", Package: "SSOP-28",
			DimensionsMM:  &Dimensions{Width: 10.2, Height: 7.8},
			PlacementZone: "edge_top", PlacementPriority: ptr(2),
			KiCadSymbol: "Interface_USB:FT232RL", KiCadFootprint: "Package_SO:SSOP-28_5.3x10.2mm_P0.65mm",
			Interfaces:         []string{"UART", "USB"},
			RequiresDecoupling: true, PowerDrawMA: 15,
			Price1: 4.50, Price10: 4.05, Price100: 3.50, DigiKeyPN: "768-1007-1-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"7", "18", "21"}}, {Net: "VUSB", Pins: []string{"20"}}},
				Interfaces: map[string]map[string]string{
					"UART": {"TX": "1", "RX": "5"},
					"USB":  {"DP": "15", "DM": "16"},
				},
			},
		},
		{
			ID: "mcp2515", DisplayName: "MCP2515 CAN Controller", Category: "comms", Subcategory: "can_controller",
			MPN: "MCP2515-I/SO", Manufacturer: "Microchip Technology", Package: "SOIC-18",
			DimensionsMM:  &Dimensions{Width: 11.6, Height: 7.5},
			PlacementZone: "edge_top", PlacementPriority: ptr(2),
			KiCadSymbol: "Interface_CAN_LIN:MCP2515-xSO", KiCadFootprint: "Package_SO:SOIC-18W_7.5x11.6mm_P1.27mm",
			Interfaces:         []string{"SPI"},
			RequiresDecoupling: true, PowerDrawMA: 10,
			Price1: 1.82, Price10: 1.55, Price100: 1.30, DigiKeyPN: "MCP2515-I/SO-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"9"}}, {Net: "3V3", Pins: []string{"18"}}},
				Interfaces: map[string]map[string]string{
					"SPI": {"MOSI": "14", "MISO": "15", "SCK": "13", "CS": "16", "INT": "12"},
				},
			},
		},
		{
			ID: "sn65hvd230", DisplayName: "SN65HVD230 CAN Transceiver", Category: "comms", Subcategory: "can_transceiver",
			MPN: "SN65HVD230DR", Manufacturer: "Texas Instruments", Package: "SOIC-8",
			DimensionsMM:  &Dimensions{Width: 4.9, Height: 3.9},
			PlacementZone: "edge_top", PlacementPriority: ptr(2),
			KiCadSymbol: "Interface_CAN_LIN:SN65HVD230", KiCadFootprint: "Package_SO:SOIC-8_3.9x4.9mm_P1.27mm",
			PowerDrawMA: 10,
			Price1:      1.10, Price10: 0.95, Price100: 0.78,
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"2"}}, {Net: "3V3", Pins: []string{"3"}}},
				Interfaces: map[string]map[string]string{
					"CAN": {"CANH": "7", "CANL": "6"},
				},
			},
		},

		// Displays
		{
			ID: "ssd1306_module", DisplayName: "SSD1306 0.96\" OLED Module", Category: "display", Subcategory: "oled_i2c",
			MPN: "WEA012864DWPP3N00003", Manufacturer: "Winstar", Package: "module",
			DimensionsMM:  &Dimensions{Width: 27.0, Height: 27.5},
			PlacementZone: "edge_top", PlacementPriority: ptr(6),
			KiCadSymbol: "Display_Graphic:SSD1306-128x64", KiCadFootprint: "Display:SSD1306-0.96in",
			Interfaces:  []string{"I2C"},
			PowerDrawMA: 20, LogicVoltage: 3.3,
			Price1:      2.50, Price10: 2.15, Price100: 1.80, DigiKeyPN: "SSD1306-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"1"}}, {Net: "3V3", Pins: []string{"2"}}},
				Interfaces: map[string]map[string]string{
					"I2C": {"SDA": "4", "SCL": "3"},
				},
			},
		},
		{
			ID: "ili9341_module", DisplayName: "ILI9341 2.4\" TFT Module", Category: "display", Subcategory: "tft_spi",
			MPN: "MSP2402", Manufacturer: "Waveshare", Package: "module",
			DimensionsMM:  &Dimensions{Width: 42.7, Height: 60.3},
			PlacementZone: "edge_top", PlacementPriority: ptr(6),
			KiCadSymbol: "Display_Graphic:ILI9341",
			Interfaces:  []string{"SPI"},
			PowerDrawMA: 80, LogicVoltage: 3.3,
			Price1:      3.80, Price10: 3.40, Price100: 2.90, DigiKeyPN: "ILI9341-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"2"}}, {Net: "3V3", Pins: []string{"1"}}},
				Interfaces: map[string]map[string]string{
					"SPI": {"MOSI": "6", "MISO": "9", "SCK": "7", "CS": "3", "RST": "4"},
				},
			},
		},

		// Motor drivers
		{
			ID: "drv8833", DisplayName: "DRV8833 Dual H-Bridge", Category: "motor_driver", Subcategory: "dc_brushed",
			MPN: "DRV8833PWPR", Manufacturer: "Texas Instruments", Package: "HTSSOP-16",
			DimensionsMM:  &Dimensions{Width: 5.0, Height: 6.4},
			PlacementZone: "edge_bottom", PlacementPriority: ptr(5),
			KiCadSymbol: "Driver_Motor:DRV8833PWP", KiCadFootprint: "Package_SO:HTSSOP-16-1EP_4.4x5mm_P0.65mm",
			RequiresDecoupling: true, PowerDrawMA: 50,
			Price1: 1.45, Price10: 1.28, Price100: 1.05, DigiKeyPN: "296-30391-1-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"13"}}, {Net: "VIN", Pins: []string{"12"}}},
			},
		},
		{
			ID: "a4988", DisplayName: "A4988 Stepper Driver", Category: "motor_driver", Subcategory: "stepper",
			MPN: "A4988SETTR-T", Manufacturer: "Allegro MicroSystems", Package: "QFN-28",
			DimensionsMM:  &Dimensions{Width: 5.0, Height: 5.0},
			PlacementZone: "edge_bottom", PlacementPriority: ptr(5),
			KiCadSymbol: "Driver_Motor:A4988", KiCadFootprint: "Package_DFN_QFN:QFN-28-1EP_5x5mm_P0.5mm",
			RequiresDecoupling: true, PowerDrawMA: 40,
			Price1: 2.80, Price10: 2.45, Price100: 2.05, DigiKeyPN: "620-1436-1-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"3", "18"}}, {Net: "VIN", Pins: []string{"2"}}},
			},
		},
		{
			ID: "pca9685", DisplayName: "PCA9685 16ch PWM Driver", Category: "motor_driver", Subcategory: "servo_pwm",
			MPN: "PCA9685PW", Manufacturer: "NXP Semiconductors", Package: "TSSOP-28",
			DimensionsMM:  &Dimensions{Width: 9.7, Height: 6.4},
			PlacementZone: "edge_bottom", PlacementPriority: ptr(5),
			KiCadSymbol: "Driver_LED:PCA9685PW", KiCadFootprint: "Package_SO:TSSOP-28_4.4x9.7mm_P0.65mm",
			Interfaces:         []string{"I2C"},
			RequiresDecoupling: true, PowerDrawMA: 10,
			Price1: 2.35, Price10: 2.08, Price100: 1.75, DigiKeyPN: "568-5931-1-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"14"}}, {Net: "3V3", Pins: []string{"28"}}},
				Interfaces: map[string]map[string]string{
					"I2C": {"SDA": "27", "SCL": "26"},
				},
			},
		},
		{
			ID: "drv8302", DisplayName: "DRV8302 BLDC Gate Driver", Category: "motor_driver", Subcategory: "bldc",
			MPN: "DRV8302DCAR", Manufacturer: "Texas Instruments", Package: "HTSSOP-56",
			DimensionsMM:  &Dimensions{Width: 12.5, Height: 6.1},
			PlacementZone: "edge_bottom", PlacementPriority: ptr(5),
			KiCadSymbol: "Driver_Motor:DRV8302", KiCadFootprint: "Package_SO:HTSSOP-56_6.1x14mm_P0.5mm",
			RequiresDecoupling: true, PowerDrawMA: 15,
			Price1: 5.90, Price10: 5.25, Price100: 4.50, DigiKeyPN: "296-30758-1-ND",
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"56"}}, {Net: "VIN", Pins: []string{"5"}}},
			},
		},

		// Connectors
		{
			ID: "usb_c_connector", DisplayName: "USB-C Receptacle", Category: "connector", Subcategory: "usb",
			MPN: "TYPE-C-31-M-12", Manufacturer: "Korean Hroparts", Package: "SMD-16",
			DimensionsMM:  &Dimensions{Width: 9.0, Height: 7.3},
			PlacementZone: "edge_bottom", PlacementPriority: ptr(3),
			KiCadSymbol: "Connector:USB_C_Receptacle_USB2.0_16P", KiCadFootprint: "Connector_USB:USB_C_Receptacle_HRO_TYPE-C-31-M-12",
			Price1: 0.55, Price10: 0.46, Price100: 0.36,
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"A1", "B1"}}, {Net: "VUSB", Pins: []string{"A4", "B4"}}},
				Interfaces: map[string]map[string]string{
					"USB": {"DP": "A6", "DM": "A7"},
				},
			},
		},
		{
			ID: "conn_jst_ph_2", DisplayName: "JST-PH 2-pin Battery Connector", Category: "connector", Subcategory: "battery",
			MPN: "B2B-PH-K-S", Manufacturer: "JST", Package: "THT",
			DimensionsMM:  &Dimensions{Width: 7.9, Height: 4.5},
			PlacementZone: "edge_bottom", PlacementPriority: ptr(3),
			KiCadSymbol: "Connector_Generic:Conn_01x02", KiCadFootprint: "Connector_JST:JST_PH_B2B-PH-K_1x02_P2.00mm_Vertical",
			Price1: 0.12, Price10: 0.10, Price100: 0.07,
			Pins: &PinMap{
				Power: []PowerPin{{Net: "VBAT", Pins: []string{"1"}}, {Net: "GND", Pins: []string{"2"}}},
			},
		},
		{
			ID: "microsd_socket", DisplayName: "microSD Card Socket", Category: "connector", Subcategory: "card",
			MPN: "DM3AT-SF-PEJM5", Manufacturer: "Hirose", Package: "SMD",
			DimensionsMM:  &Dimensions{Width: 14.0, Height: 15.0},
			PlacementZone: "edge_bottom", PlacementPriority: ptr(3),
			KiCadSymbol: "Connector_Card:microSD_HC", KiCadFootprint: "Connector_Card:microSD_HC_Hirose_DM3AT-SF-PEJM5",
			Interfaces: []string{"SPI"},
			Price1:     1.20, Price10: 1.05, Price100: 0.85,
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"6"}}, {Net: "3V3", Pins: []string{"4"}}},
				Interfaces: map[string]map[string]string{
					"SPI": {"MOSI": "3", "MISO": "7", "SCK": "5", "CS": "2"},
				},
			},
		},
		{
			ID: "sma_edge_connector", DisplayName: "SMA Edge-Mount Connector", Category: "connector", Subcategory: "antenna",
			MPN: "132289", Manufacturer: "Amphenol RF", Package: "edge",
			DimensionsMM:  &Dimensions{Width: 6.5, Height: 9.0},
			PlacementZone: "edge_right", PlacementPriority: ptr(3),
			KiCadSymbol: "Connector:Conn_Coaxial", KiCadFootprint: "Connector_Coaxial:SMA_Amphenol_132289_EdgeMount",
			Price1: 1.85, Price10: 1.60, Price100: 1.30,
			Pins: &PinMap{
				Power: []PowerPin{{Net: "GND", Pins: []string{"2"}}},
			},
		},
		{
			ID: "pin_header_1x4", DisplayName: "1x4 Pin Header", Category: "connector", Subcategory: "header",
			MPN: "M20-9990446", Manufacturer: "Harwin", Package: "THT",
			DimensionsMM: &Dimensions{Width: 10.2, Height: 2.5},
			KiCadSymbol:  "Connector_Generic:Conn_01x04", KiCadFootprint: "Connector_PinHeader_2.54mm:PinHeader_1x04_P2.54mm_Vertical",
			Price1: 0.15, Price10: 0.12, Price100: 0.09,
		},

		// Passives and small discretes
		{
			ID: "cap_100nf_0402", DisplayName: "100nF 0402 Capacitor", Category: "passive", Subcategory: "capacitor",
			MPN: "CL05B104KO5NNNC", Manufacturer: "Samsung EM", Package: "0402",
			DimensionsMM: &Dimensions{Width: 1.0, Height: 0.5},
			KiCadSymbol:  "Device:C", KiCadFootprint: "Capacitor_SMD:C_0402_1005Metric",
			Price1: 0.01, Price10: 0.008, Price100: 0.004, LCSCPN: "C1525",
		},
		{
			ID: "cap_10uf_0805", DisplayName: "10uF 0805 Capacitor", Category: "passive", Subcategory: "capacitor",
			MPN: "CL21A106KAYNNNE", Manufacturer: "Samsung EM", Package: "0805",
			DimensionsMM: &Dimensions{Width: 2.0, Height: 1.25},
			KiCadSymbol:  "Device:C", KiCadFootprint: "Capacitor_SMD:C_0805_2012Metric",
			Price1: 0.03, Price10: 0.02, Price100: 0.012, LCSCPN: "C15850",
		},
		{
			ID: "res_4k7_0402", DisplayName: "4.7k 0402 Resistor", Category: "passive", Subcategory: "resistor",
			MPN: "RC0402FR-074K7L", Manufacturer: "Yageo", Package: "0402",
			DimensionsMM: &Dimensions{Width: 1.0, Height: 0.5},
			KiCadSymbol:  "Device:R", KiCadFootprint: "Resistor_SMD:R_0402_1005Metric",
			Price1: 0.01, Price10: 0.006, Price100: 0.003, LCSCPN: "C25900",
		},
		{
			ID: "res_2k2_0402", DisplayName: "2.2k 0402 Resistor", Category: "passive", Subcategory: "resistor",
			MPN: "RC0402FR-072K2L", Manufacturer: "Yageo", Package: "0402",
			DimensionsMM: &Dimensions{Width: 1.0, Height: 0.5},
			KiCadSymbol:  "Device:R", KiCadFootprint: "Resistor_SMD:R_0402_1005Metric",
			Price1: 0.01, Price10: 0.006, Price100: 0.003,
		},
		{
			ID: "res_10k_0402", DisplayName: "10k 0402 Resistor", Category: "passive", Subcategory: "resistor",
			MPN: "RC0402FR-0710KL", Manufacturer: "Yageo", Package: "0402",
			DimensionsMM: &Dimensions{Width: 1.0, Height: 0.5},
			KiCadSymbol:  "Device:R", KiCadFootprint: "Resistor_SMD:R_0402_1005Metric",
			Price1: 0.01, Price10: 0.006, Price100: 0.003, LCSCPN: "C25744",
		},
		{
			ID: "diode_1n4148w", DisplayName: "1N4148W Flyback Diode", Category: "passive", Subcategory: "diode_flyback",
			MPN: "1N4148W-7-F", Manufacturer: "Diodes Inc", Package: "SOD-123",
			DimensionsMM: &Dimensions{Width: 2.7, Height: 1.6},
			KiCadSymbol:  "Device:D", KiCadFootprint: "Diode_SMD:D_SOD-123",
			Price1: 0.02, Price10: 0.015, Price100: 0.01,
		},
		{
			ID: "led_0603_red", DisplayName: "Red 0603 LED", Category: "passive", Subcategory: "led",
			MPN: "KT-0603R", Manufacturer: "Hubei KENTO", Package: "0603",
			DimensionsMM: &Dimensions{Width: 1.6, Height: 0.8},
			KiCadSymbol:  "Device:LED", KiCadFootprint: "LED_SMD:LED_0603_1608Metric",
			PowerDrawMA: 2,
			Price1:      0.01, Price10: 0.008, Price100: 0.005, LCSCPN: "C2286",
		},
		{
			ID: "usblc6_2sc6", DisplayName: "USBLC6-2SC6 ESD Protection", Category: "passive", Subcategory: "tvs_esd",
			MPN: "USBLC6-2SC6", Manufacturer: "STMicroelectronics", Package: "SOT-23-6",
			DimensionsMM: &Dimensions{Width: 2.9, Height: 1.6},
			KiCadSymbol:  "Power_Protection:USBLC6-2SC6", KiCadFootprint: "Package_TO_SOT_SMD:SOT-23-6",
			Price1: 0.35, Price10: 0.28, Price100: 0.20,
		},
		{
			ID: "ao3401a", DisplayName: "AO3401A P-MOSFET", Category: "passive", Subcategory: "mosfet_p",
			MPN: "AO3401A", Manufacturer: "Alpha & Omega", Package: "SOT-23",
			DimensionsMM: &Dimensions{Width: 2.9, Height: 1.3},
			KiCadSymbol:  "Transistor_FET:AO3401A", KiCadFootprint: "Package_TO_SOT_SMD:SOT-23",
			Price1: 0.08, Price10: 0.06, Price100: 0.04, LCSCPN: "C15127",
		},
		{
			ID: "crystal_8mhz", DisplayName: "8MHz Crystal", Category: "passive", Subcategory: "crystal",
			MPN: "X322508MSB4SI", Manufacturer: "Yangxing Tech", Package: "3225",
			DimensionsMM: &Dimensions{Width: 3.2, Height: 2.5},
			KiCadSymbol:  "Device:Crystal", KiCadFootprint: "Crystal:Crystal_SMD_3225-4Pin_3.2x2.5mm",
			Price1: 0.12, Price10: 0.10, Price100: 0.07,
		},
		{
			ID: "fuse_1206_500ma", DisplayName: "500mA 1206 Fuse", Category: "passive", Subcategory: "fuse",
			MPN: "0451.500MRL", Manufacturer: "Littelfuse", Package: "1206",
			DimensionsMM: &Dimensions{Width: 3.2, Height: 1.6},
			KiCadSymbol:  "Device:Fuse", KiCadFootprint: "Fuse:Fuse_1206_3216Metric",
			Price1: 0.25, Price10: 0.20, Price100: 0.14,
		},
		{
			ID: "mounting_hole_m3", DisplayName: "M3 Mounting Hole", Category: "passive", Subcategory: "mechanical",
			RefPrefix:    "H",
			DimensionsMM: &Dimensions{Width: 6.0, Height: 6.0},
			KiCadSymbol:  "Mechanical:MountingHole", KiCadFootprint: "MountingHole:MountingHole_3.2mm_M3_Pad",
		},
		{
			ID: "fiducial_1mm", DisplayName: "1mm Fiducial", Category: "passive", Subcategory: "fiducial",
			DimensionsMM:   &Dimensions{Width: 2.0, Height: 2.0},
			KiCadFootprint: "Fiducial:Fiducial_1mm_Mask2mm",
		},
	}
}
