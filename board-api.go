package board

const StationLookupAPI = "https://www.mvg.de/api/bgw-pt/v3/locations?query=%s"
const DeparturesAPI = "https://www.mvg.de/api/bgw-pt/v3/departures?globalId=%s&limit=%d&transportTypes=%s"

const ForecastAPI = "https://api.open-meteo.com/v1/forecast?latitude=%.4f&longitude=%.4f&hourly=temperature_2m,apparent_temperature,weathercode,precipitation,windspeed_10m&forecast_days=2"
