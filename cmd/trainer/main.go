package main

import (
	"fmt"

	"farm-advisor/internal/artifact"
	"farm-advisor/internal/training"

	"github.com/spf13/cobra"
)

var (
	cropDataset     string
	rainfallDataset string
	outDir          string
	seed            int64
	region          string
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "trainer",
	Short:         "Train the farm-advisor model artifacts",
	SilenceUsage:  false,
	SilenceErrors: true,
	Long: `Offline training for the farm-advisor web service.

The crop command fits the recommendation classifier from the labeled
soil/weather dataset; the rainfall command fits the monthly rainfall
regressor from the historical rainfall dataset. Both serialize their
artifacts into the models directory the server loads at startup.`,
}

var cropCmd = &cobra.Command{
	Use:   "crop",
	Short: "Train the crop recommendation classifier",
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := training.LoadCropDataset(cropDataset)
		if err != nil {
			return err
		}
		fmt.Printf("Dataset loaded: %d rows\n", len(samples))

		result, err := training.TrainCrop(samples, seed)
		if err != nil {
			return err
		}
		fmt.Printf("Model accuracy: %.2f%% (%d train / %d test)\n",
			result.Accuracy*100, result.TrainSize, result.TestSize)

		if err := artifact.Save(outDir, result.Classifier, result.Scaler, result.Encoder); err != nil {
			return err
		}
		fmt.Printf("Models saved to %s\n", outDir)
		return nil
	},
}

var rainfallCmd = &cobra.Command{
	Use:   "rainfall",
	Short: "Train the monthly rainfall regressor",
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := training.LoadRainfallDataset(rainfallDataset, region)
		if err != nil {
			return err
		}
		fmt.Printf("Dataset loaded: %d samples\n", len(samples))

		result, err := training.TrainRainfall(samples, seed)
		if err != nil {
			return err
		}
		fmt.Printf("Rainfall MAE: %.2fmm (%d train / %d test)\n",
			result.MAE, result.TrainSize, result.TestSize)

		if err := artifact.SaveRainfall(outDir, result.Model); err != nil {
			return err
		}
		fmt.Printf("Rainfall model saved to %s\n", outDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "models", "directory to write model artifacts to")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "seed for the train/test split shuffle")

	cropCmd.Flags().StringVar(&cropDataset, "dataset", "dataset/Crop_recommendation.csv", "crop recommendation CSV")
	rainfallCmd.Flags().StringVar(&rainfallDataset, "dataset", "dataset/rainfall in india 1901-2015.csv", "historical rainfall CSV")
	rainfallCmd.Flags().StringVar(&region, "region", "KARNATAKA", "subdivision filter (substring match)")

	rootCmd.AddCommand(cropCmd, rainfallCmd)
}
