package config

type AppConfig struct {
	Game GameConfig
	Log  LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	gameCfg, err := LoadGame()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Game: gameCfg,
		Log:  logCfg,
	}, nil
}
