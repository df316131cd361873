package downsampler

import (
	"fmt"
	"sync"
)

// ToSpeechRate downsamples input to RateVoIP (16 kHz), the rate most speech
// recognition models expect.
func ToSpeechRate(input []float64, sourceRate float64) ([]float64, error) {
	return Downsample(input, sourceRate, RateVoIP)
}

// ToTelephonyRate downsamples input to RateTelephony (8 kHz).
func ToTelephonyRate(input []float64, sourceRate float64) ([]float64, error) {
	return Downsample(input, sourceRate, RateTelephony)
}

// DownsampleAll downsamples independent buffers that share a rate pair.
//
// Each buffer is a separate single-channel job; buffers are processed
// concurrently and the results are identical to calling Downsample on each
// buffer in turn. The rate pair is validated once, before any work starts.
func DownsampleAll(inputs [][]float64, sourceRate, targetRate float64) ([][]float64, error) {
	d, err := New(&Config{SourceRate: sourceRate, TargetRate: targetRate})
	if err != nil {
		return nil, err
	}
	return d.ProcessAll(inputs)
}

// ProcessAll processes independent buffers concurrently. See DownsampleAll.
func (d *Downsampler) ProcessAll(inputs [][]float64) ([][]float64, error) {
	outputs := make([][]float64, len(inputs))

	// Sequential fallback for a single buffer
	if len(inputs) < minParallelJobs {
		for i, input := range inputs {
			out, err := d.Process(input)
			if err != nil {
				return nil, fmt.Errorf("downsampling failed on buffer %d: %w", i, err)
			}
			outputs[i] = out
		}
		return outputs, nil
	}

	var wg sync.WaitGroup
	var processErr error
	var errMu sync.Mutex

	for i := range inputs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			out, err := d.Process(inputs[idx])
			if err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = fmt.Errorf("downsampling failed on buffer %d: %w", idx, err)
				}
				errMu.Unlock()
				return
			}
			outputs[idx] = out
		}(i)
	}
	wg.Wait()

	if processErr != nil {
		return nil, processErr
	}

	return outputs, nil
}
