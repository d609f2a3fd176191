package main

import (
    "log"

    "github.com/MeenakshiPramod/WellHer/config"
    "github.com/MeenakshiPramod/WellHer/routes"
    "github.com/MeenakshiPramod/WellHer/services"
    "github.com/MeenakshiPramod/WellHer/utils"
)

func main() {
    config.InitDB()
    utils.InitS3()
    services.InitSessionManager()
    if err := services.InitAdviceService(); err != nil {
        log.Printf("AI advice disabled: %v", err)
    }

    r := routes.SetupRouter()
    r.Run(":8080")
}
