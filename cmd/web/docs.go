package main

// @title City Weather API
// @version 1.0
// @description Current weather for a city name, resolved through Open-Meteo geocoding and forecast APIs.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /
